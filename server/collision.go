package main

// CheckCollision checks if two circles strictly overlap
func CheckCollision(a Vec2, ra float64, b Vec2, rb float64) bool {
	radSum := ra + rb
	return DistanceSq(a, b) < radSum*radSum
}

// Collides reports whether two bodies overlap
func Collides(a, b Body) bool {
	return CheckCollision(a.Pos, a.Kind.Radius(), b.Pos, b.Kind.Radius())
}

// Eligible reports whether a and b are allowed to collide at all.
// Enemies collide with everything, everyone else only with the other side.
func Eligible(a, b Body) bool {
	if a.Kind == b.Kind && a.ID == b.ID {
		return false
	}
	if a.Kind == KindEnemy || b.Kind == KindEnemy {
		return true
	}
	return a.Side != b.Side
}

// DetectCollisions returns every participant of every qualifying pair. A
// body is listed once per collision it takes part in.
func DetectCollisions(buckets [][]Body) []Body {
	var hits []Body
	for _, bucket := range buckets {
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				a, b := bucket[i], bucket[j]
				if Eligible(a, b) && Collides(a, b) {
					hits = append(hits, a, b)
				}
			}
		}
	}
	return hits
}

type bodyKey struct {
	kind Kind
	id   string
}

// Consequences reduces a collision list to one entry per entity, in order of
// first appearance. An entity pays for or earns from at most one hit per tick.
func Consequences(hits []Body) []Body {
	seen := make(map[bodyKey]struct{}, len(hits))
	out := make([]Body, 0, len(hits))
	for _, b := range hits {
		k := bodyKey{b.Kind, b.ID}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, b)
	}
	return out
}
