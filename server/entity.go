package main

import "time"

const (
	ScreenWidth     = 1920.0
	ScreenHeight    = 1080.0
	PlayerHalfWidth = 20.0
	EnemyHalfWidth  = 20.0
	BulletRadius    = 5.0
	BallisticSpeed  = 300.0 // units/s, shared by every enemy and bullet
)

// Side is a team affiliation; bodies on the same side never hurt each other
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Kind tags the variant a Body was built from
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBullet
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	}
	return "unknown"
}

// Radius is the collision radius shared by every body of this kind
func (k Kind) Radius() float64 {
	switch k {
	case KindPlayer:
		return PlayerHalfWidth
	case KindEnemy:
		return EnemyHalfWidth
	case KindBullet:
		return BulletRadius
	}
	return 0
}

// Player is a player snapshot. Its position is authoritative.
type Player struct {
	ID     string
	Pos    Vec2
	HP     int
	Score  int
	Side   Side
	Speed  float64
	Radius float64
}

// Enemy moves ballistically from where it was spawned
type Enemy struct {
	ID         string
	CreatedPos Vec2
	Direction  Vec2 // unit vector
	CreatedAt  time.Time
	Type       int
}

// Position extrapolates the enemy to now
func (e Enemy) Position(now time.Time) Vec2 {
	return ResolveBallistic(e.CreatedPos, e.Direction, e.CreatedAt, now)
}

// Bullet moves ballistically and remembers who fired it
type Bullet struct {
	ID         string
	CreatedPos Vec2
	Direction  Vec2 // unit vector
	CreatedAt  time.Time
	Side       Side
	ShooterID  string
}

// NewBullet fires a bullet from the shooter's current position. The side is
// copied so later side changes of the shooter do not affect it.
func NewBullet(shooter Player, dir Vec2, now time.Time) Bullet {
	return Bullet{
		ID:         GenerateID(),
		CreatedPos: shooter.Pos,
		Direction:  dir,
		CreatedAt:  now,
		Side:       shooter.Side,
		ShooterID:  shooter.ID,
	}
}

// Position extrapolates the bullet to now
func (b Bullet) Position(now time.Time) Vec2 {
	return ResolveBallistic(b.CreatedPos, b.Direction, b.CreatedAt, now)
}

// GameConfig is the playfield configuration
type GameConfig struct {
	DisplayNumber int
}

// DisplayNumberOf returns the screen count for cfg, defaulting to one
// when the config is absent or nonsensical.
func DisplayNumberOf(cfg *GameConfig) int {
	if cfg == nil || cfg.DisplayNumber < 1 {
		return 1
	}
	return cfg.DisplayNumber
}

// Body is one entity resolved for a single pass
type Body struct {
	Kind      Kind
	ID        string
	Side      Side   // empty for enemies
	ShooterID string // bullets only
	Pos       Vec2
}

// PlayerBody builds the body of a player
func PlayerBody(p Player) Body {
	return Body{Kind: KindPlayer, ID: p.ID, Side: p.Side, Pos: ResolvePlayer(p)}
}

// EnemyBody builds the body of an enemy at now
func EnemyBody(e Enemy, now time.Time) Body {
	return Body{Kind: KindEnemy, ID: e.ID, Pos: e.Position(now)}
}

// BulletBody builds the body of a bullet at now
func BulletBody(b Bullet, now time.Time) Body {
	return Body{Kind: KindBullet, ID: b.ID, Side: b.Side, ShooterID: b.ShooterID, Pos: b.Position(now)}
}

// Bodies resolves every entity of a snapshot at the same instant
func Bodies(players []Player, enemies []Enemy, bullets []Bullet, now time.Time) []Body {
	out := make([]Body, 0, len(players)+len(enemies)+len(bullets))
	for _, p := range players {
		out = append(out, PlayerBody(p))
	}
	for _, e := range enemies {
		out = append(out, EnemyBody(e, now))
	}
	for _, b := range bullets {
		out = append(out, BulletBody(b, now))
	}
	return out
}
