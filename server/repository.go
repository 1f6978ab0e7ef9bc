package main

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=mock_stores_test.go -package=main . PlayerStore,ScoreKeeper,EnemyStore,BulletStore,GameConfigStore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a delete or score update targets a missing row
var ErrNotFound = errors.New("repository: not found")

// PlayerStore reads and removes players
type PlayerStore interface {
	FindAll(ctx context.Context) ([]Player, error)
	Delete(ctx context.Context, id string) error
}

// ScoreKeeper adjusts a player's score
type ScoreKeeper interface {
	AddScore(ctx context.Context, playerID string, delta int) error
}

// EnemyStore reads and removes enemies
type EnemyStore interface {
	FindAll(ctx context.Context) ([]Enemy, error)
	Delete(ctx context.Context, id string) error
}

// BulletStore reads and removes bullets
type BulletStore interface {
	FindAll(ctx context.Context) ([]Bullet, error)
	Delete(ctx context.Context, id string) error
}

// GameConfigStore reads the playfield configuration. Find returns nil, nil
// when no configuration has been stored.
type GameConfigStore interface {
	Find(ctx context.Context) (*GameConfig, error)
}

// Stores bundles the repositories the collision loop works against
type Stores struct {
	Players PlayerStore
	Scores  ScoreKeeper
	Enemies EnemyStore
	Bullets BulletStore
	Config  GameConfigStore
}
