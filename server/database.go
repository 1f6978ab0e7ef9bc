package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// OpenDB opens (or creates) the SQLite database
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection: SQLite serializes writers anyway, and a shared
	// connection keeps ":memory:" databases coherent.
	conn.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates tables if they don't exist
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		x REAL NOT NULL DEFAULT 0,
		y REAL NOT NULL DEFAULT 0,
		hp INTEGER NOT NULL DEFAULT 0,
		score INTEGER NOT NULL DEFAULT 0,
		side TEXT NOT NULL,
		speed REAL NOT NULL DEFAULT 0,
		radius REAL NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS enemies (
		id TEXT PRIMARY KEY,
		created_x REAL NOT NULL,
		created_y REAL NOT NULL,
		dir_x REAL NOT NULL,
		dir_y REAL NOT NULL,
		created_at INTEGER NOT NULL,
		type INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS bullets (
		id TEXT PRIMARY KEY,
		created_x REAL NOT NULL,
		created_y REAL NOT NULL,
		dir_x REAL NOT NULL,
		dir_y REAL NOT NULL,
		created_at INTEGER NOT NULL,
		side TEXT NOT NULL,
		shooter_id TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS game_config (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		display_number INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		Log.Errorw("db migration failed", "err", err)
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Players returns the player repository
func (db *DB) Players() *PlayerRepo { return &PlayerRepo{db: db} }

// Enemies returns the enemy repository
func (db *DB) Enemies() *EnemyRepo { return &EnemyRepo{db: db} }

// Bullets returns the bullet repository
func (db *DB) Bullets() *BulletRepo { return &BulletRepo{db: db} }

// GameConfig returns the playfield configuration repository
func (db *DB) GameConfig() *GameConfigRepo { return &GameConfigRepo{db: db} }

// Stores returns the repositories backed by this database
func (db *DB) Stores() Stores {
	players := db.Players()
	return Stores{
		Players: players,
		Scores:  players,
		Enemies: db.Enemies(),
		Bullets: db.Bullets(),
		Config:  db.GameConfig(),
	}
}

// execOne runs a statement that must touch exactly one row
func (db *DB) execOne(ctx context.Context, query string, args ...any) error {
	res, err := db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSetting returns a stored setting, or "" when unset
func (db *DB) GetSetting(ctx context.Context, key string) (string, error) {
	var v string
	err := db.conn.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return v, err
}

// SetSetting stores a setting
func (db *DB) SetSetting(ctx context.Context, key, value string) error {
	_, err := db.conn.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// PlayerRepo stores players
type PlayerRepo struct {
	db *DB
}

// Save inserts or replaces a player
func (r *PlayerRepo) Save(ctx context.Context, p Player) error {
	_, err := r.db.conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO players (id, x, y, hp, score, side, speed, radius)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Pos.X, p.Pos.Y, p.HP, p.Score, string(p.Side), p.Speed, p.Radius,
	)
	return err
}

// Get returns a player by ID
func (r *PlayerRepo) Get(ctx context.Context, id string) (*Player, error) {
	row := r.db.conn.QueryRowContext(ctx,
		"SELECT id, x, y, hp, score, side, speed, radius FROM players WHERE id = ?", id)
	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindAll returns every player
func (r *PlayerRepo) FindAll(ctx context.Context) ([]Player, error) {
	rows, err := r.db.conn.QueryContext(ctx,
		"SELECT id, x, y, hp, score, side, speed, radius FROM players")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// Delete removes a player
func (r *PlayerRepo) Delete(ctx context.Context, id string) error {
	return r.db.execOne(ctx, "DELETE FROM players WHERE id = ?", id)
}

// AddScore adds delta to a player's score atomically
func (r *PlayerRepo) AddScore(ctx context.Context, playerID string, delta int) error {
	return r.db.execOne(ctx, "UPDATE players SET score = score + ? WHERE id = ?", delta, playerID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (Player, error) {
	var p Player
	var side string
	err := row.Scan(&p.ID, &p.Pos.X, &p.Pos.Y, &p.HP, &p.Score, &side, &p.Speed, &p.Radius)
	p.Side = Side(side)
	return p, err
}

// EnemyRepo stores enemies
type EnemyRepo struct {
	db *DB
}

// Save inserts or replaces an enemy
func (r *EnemyRepo) Save(ctx context.Context, e Enemy) error {
	_, err := r.db.conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO enemies (id, created_x, created_y, dir_x, dir_y, created_at, type)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatedPos.X, e.CreatedPos.Y, e.Direction.X, e.Direction.Y, e.CreatedAt.UnixMilli(), e.Type,
	)
	return err
}

// FindAll returns every enemy
func (r *EnemyRepo) FindAll(ctx context.Context) ([]Enemy, error) {
	rows, err := r.db.conn.QueryContext(ctx,
		"SELECT id, created_x, created_y, dir_x, dir_y, created_at, type FROM enemies")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Enemy
	for rows.Next() {
		var e Enemy
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.CreatedPos.X, &e.CreatedPos.Y, &e.Direction.X, &e.Direction.Y, &createdAt, &e.Type); err != nil {
			return nil, err
		}
		e.CreatedAt = time.UnixMilli(createdAt)
		result = append(result, e)
	}
	return result, rows.Err()
}

// Delete removes an enemy
func (r *EnemyRepo) Delete(ctx context.Context, id string) error {
	return r.db.execOne(ctx, "DELETE FROM enemies WHERE id = ?", id)
}

// BulletRepo stores bullets
type BulletRepo struct {
	db *DB
}

// Save inserts or replaces a bullet
func (r *BulletRepo) Save(ctx context.Context, b Bullet) error {
	_, err := r.db.conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO bullets (id, created_x, created_y, dir_x, dir_y, created_at, side, shooter_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.CreatedPos.X, b.CreatedPos.Y, b.Direction.X, b.Direction.Y, b.CreatedAt.UnixMilli(), string(b.Side), b.ShooterID,
	)
	return err
}

// FindAll returns every bullet
func (r *BulletRepo) FindAll(ctx context.Context) ([]Bullet, error) {
	rows, err := r.db.conn.QueryContext(ctx,
		"SELECT id, created_x, created_y, dir_x, dir_y, created_at, side, shooter_id FROM bullets")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Bullet
	for rows.Next() {
		var b Bullet
		var createdAt int64
		var side string
		if err := rows.Scan(&b.ID, &b.CreatedPos.X, &b.CreatedPos.Y, &b.Direction.X, &b.Direction.Y, &createdAt, &side, &b.ShooterID); err != nil {
			return nil, err
		}
		b.CreatedAt = time.UnixMilli(createdAt)
		b.Side = Side(side)
		result = append(result, b)
	}
	return result, rows.Err()
}

// Delete removes a bullet
func (r *BulletRepo) Delete(ctx context.Context, id string) error {
	return r.db.execOne(ctx, "DELETE FROM bullets WHERE id = ?", id)
}

// GameConfigRepo stores the single playfield configuration row
type GameConfigRepo struct {
	db *DB
}

// Find returns the configuration, or nil when none is stored
func (r *GameConfigRepo) Find(ctx context.Context) (*GameConfig, error) {
	var cfg GameConfig
	err := r.db.conn.QueryRowContext(ctx, "SELECT display_number FROM game_config WHERE id = 1").Scan(&cfg.DisplayNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save stores the configuration
func (r *GameConfigRepo) Save(ctx context.Context, cfg GameConfig) error {
	if cfg.DisplayNumber < 1 {
		return fmt.Errorf("display number must be at least 1, got %d", cfg.DisplayNumber)
	}
	_, err := r.db.conn.ExecContext(ctx,
		`INSERT INTO game_config (id, display_number) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET display_number = excluded.display_number`,
		cfg.DisplayNumber,
	)
	return err
}
