package main

import (
	"math"

	"github.com/google/uuid"
)

// GenerateID returns a new opaque entity identifier
func GenerateID() string {
	return uuid.NewString()
}

// Vec2 is a point or direction on the playfield
type Vec2 struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * k
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// DistanceSq returns the squared distance between two points
func DistanceSq(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// jsRound rounds half toward positive infinity, matching the client's
// Math.round. floor(v+0.5) is off by one for 0.49999999999999994, where the
// sum itself rounds up to 1.
func jsRound(v float64) float64 {
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	return r
}
