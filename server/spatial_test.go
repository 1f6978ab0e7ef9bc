package main

import (
	"strconv"
	"testing"

	"pgregory.net/rapid"
)

func TestHalfOf(t *testing.T) {
	tests := []struct {
		f    float64
		half int
		ok   bool
	}{
		{0, 0, true},
		{0.39, 0, true},
		{0.45, 0, true}, // overlap band resolves low
		{0.59, 0, true},
		{0.61, 1, true},
		{0.99, 1, true},
		{1.3, 1, true},
		{1.45, 0, false},
		{-0.3, 0, true},
		{-0.5, 0, false},
	}
	for _, tt := range tests {
		half, ok := halfOf(tt.f)
		if half != tt.half || ok != tt.ok {
			t.Errorf("halfOf(%v) = %d, %v; want %d, %v", tt.f, half, ok, tt.half, tt.ok)
		}
	}
}

func TestJSRound(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{0.49999999999999994, 0},
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.4, 0},
		{-0.5, 0},
		{-0.6, -1},
		{-2.5, -2},
		{3, 3},
	}
	for _, tt := range tests {
		if got := jsRound(tt.v); got != tt.want {
			t.Errorf("jsRound(%v) = %v; want %v", tt.v, got, tt.want)
		}
	}
}

func TestPartitionBucketCount(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		if got := len(Partition(nil, n)); got != n*cellsPerScreen {
			t.Errorf("displayNumber %d: expected %d buckets, got %d", n, n*cellsPerScreen, got)
		}
	}
	if got := len(Partition(nil, 0)); got != cellsPerScreen {
		t.Errorf("displayNumber 0 should behave like 1, got %d buckets", got)
	}
}

func TestPartitionScreenSplit(t *testing.T) {
	left := Body{Kind: KindPlayer, ID: "p", Side: SideLeft, Pos: Vec2{X: ScreenWidth - 10, Y: 100}}
	right := Body{Kind: KindEnemy, ID: "e", Pos: Vec2{X: ScreenWidth + 10, Y: 100}}

	idx, ok := BucketIndex(right.Pos, 2)
	if !ok || idx < cellsPerScreen {
		t.Fatalf("expected a screen 1 bucket, got %d (ok=%v)", idx, ok)
	}

	buckets := Partition([]Body{left, right}, 2)
	if hits := DetectCollisions(buckets); len(hits) != 0 {
		t.Errorf("bodies on different screens must not be compared, got %d hits", len(hits))
	}
	// Same pair with a single screen: the right body is off the playfield.
	if _, ok := BucketIndex(right.Pos, 1); ok {
		t.Error("body past the last screen should not be bucketed")
	}
}

func TestPartitionDropsOffscreen(t *testing.T) {
	bodies := []Body{
		{Kind: KindEnemy, ID: "a", Pos: Vec2{X: -1, Y: 100}},
		{Kind: KindEnemy, ID: "b", Pos: Vec2{X: 2*ScreenWidth + 1, Y: 100}},
		{Kind: KindEnemy, ID: "c", Pos: Vec2{X: 100, Y: 2 * ScreenHeight}},
		{Kind: KindEnemy, ID: "d", Pos: Vec2{X: 100, Y: 100}},
	}
	total := 0
	for _, b := range Partition(bodies, 2) {
		for _, body := range b {
			total++
			if body.ID != "d" {
				t.Errorf("off-screen body %s was bucketed", body.ID)
			}
		}
	}
	if total != 1 {
		t.Errorf("expected 1 bucketed body, got %d", total)
	}
}

func TestPartitionNeighborsShareBucket(t *testing.T) {
	a := Vec2{X: 100, Y: 100}
	b := Vec2{X: 110, Y: 105}
	ia, _ := BucketIndex(a, 1)
	ib, _ := BucketIndex(b, 1)
	if ia != ib {
		t.Errorf("expected nearby points in one bucket, got %d and %d", ia, ib)
	}
}

func drawBodies(t *rapid.T, xlo, xhi, ylo, yhi float64) []Body {
	n := rapid.IntRange(0, 60).Draw(t, "n")
	bodies := make([]Body, n)
	for i := range bodies {
		bodies[i] = Body{
			Kind: KindEnemy,
			ID:   strconv.Itoa(i),
			Pos: Vec2{
				X: rapid.Float64Range(xlo, xhi).Draw(t, "x"),
				Y: rapid.Float64Range(ylo, yhi).Draw(t, "y"),
			},
		}
	}
	return bodies
}

func TestPartitionOnScreenBodiesLandOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dn := rapid.IntRange(1, 4).Draw(t, "displayNumber")
		bodies := drawBodies(t, 0, float64(dn)*ScreenWidth-1e-6, 0, ScreenHeight-1e-6)

		seen := make(map[string]int)
		for _, bucket := range Partition(bodies, dn) {
			for _, b := range bucket {
				seen[b.ID]++
			}
		}
		if len(seen) != len(bodies) {
			t.Fatalf("expected all %d on-screen bodies bucketed, got %d", len(bodies), len(seen))
		}
		for id, n := range seen {
			if n != 1 {
				t.Fatalf("body %s placed in %d buckets", id, n)
			}
		}
	})
}

func TestPartitionIsDisjointAnywhere(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dn := rapid.IntRange(1, 3).Draw(t, "displayNumber")
		bodies := drawBodies(t, -ScreenWidth, float64(dn+1)*ScreenWidth, -ScreenHeight, 2*ScreenHeight)

		want := 0
		for _, b := range bodies {
			if _, ok := BucketIndex(b.Pos, dn); ok {
				want++
			}
		}
		seen := make(map[string]bool)
		for _, bucket := range Partition(bodies, dn) {
			for _, b := range bucket {
				if seen[b.ID] {
					t.Fatalf("body %s placed twice", b.ID)
				}
				seen[b.ID] = true
			}
		}
		if len(seen) != want {
			t.Fatalf("expected %d bucketed bodies, got %d", want, len(seen))
		}
	})
}
