package main

import "time"

// ResolvePlayer returns the stored position of a player
func ResolvePlayer(p Player) Vec2 {
	return p.Pos
}

// ResolveBallistic extrapolates a body launched from createdPos at createdAt
// along direction at BallisticSpeed. Direction is expected to be a unit
// vector; anything else just yields a different speed.
func ResolveBallistic(createdPos, direction Vec2, createdAt, now time.Time) Vec2 {
	dist := now.Sub(createdAt).Seconds() * BallisticSpeed
	return createdPos.Add(direction.Scale(dist))
}
