package main

import "math"

const (
	// boundaryNudge shifts a cell ratio before rounding so bodies close to a
	// cell boundary consistently land on the lower side of it.
	boundaryNudge = 0.1

	// cells per screen: two y/x halving rounds
	cellsPerScreen = 16
)

// halfOf classifies a cell ratio as the lower (0) or upper (1) half.
// Ratios in the overlap band of the two nudged roundings resolve to 0.
func halfOf(f float64) (int, bool) {
	if jsRound(f-boundaryNudge) == 0 {
		return 0, true
	}
	if jsRound(f+boundaryNudge) == 1 {
		return 1, true
	}
	return 0, false
}

// ScreenOf returns the index of the screen containing x
func ScreenOf(x float64, displayNumber int) (int, bool) {
	s := math.Floor(x / ScreenWidth)
	if s < 0 || s >= float64(displayNumber) {
		return 0, false
	}
	return int(s), true
}

// BucketIndex returns the bucket a position falls into. Positions left of
// the first screen, past the last one, or far outside the screen height
// belong to no bucket.
func BucketIndex(pos Vec2, displayNumber int) (int, bool) {
	screen, ok := ScreenOf(pos.X, displayNumber)
	if !ok {
		return 0, false
	}
	ratios := [4]float64{
		pos.Y / ScreenHeight,
		math.Mod(pos.X, ScreenWidth) / ScreenWidth,
		math.Mod(pos.Y, ScreenHeight/2) / (ScreenHeight / 2),
		math.Mod(pos.X, ScreenWidth/2) / (ScreenWidth / 2),
	}
	idx := screen
	for _, f := range ratios {
		h, ok := halfOf(f)
		if !ok {
			return 0, false
		}
		idx = idx*2 + h
	}
	return idx, true
}

// Partition splits bodies into disjoint buckets, 16 per screen, ordered by
// screen then y-half, x-half, y-quarter, x-quarter. Only bodies sharing a
// bucket are ever checked against each other.
func Partition(bodies []Body, displayNumber int) [][]Body {
	if displayNumber < 1 {
		displayNumber = 1
	}
	buckets := make([][]Body, displayNumber*cellsPerScreen)
	for _, b := range bodies {
		idx, ok := BucketIndex(b.Pos, displayNumber)
		if !ok {
			continue
		}
		buckets[idx] = append(buckets[idx], b)
	}
	return buckets
}
