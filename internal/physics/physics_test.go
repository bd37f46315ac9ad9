package physics

import "testing"

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Fatalf("expected distance 5, got %v", d)
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(0, 0, 3, 4, 0, 2) {
		t.Fatal("circles at distance 4 with radii 3+2 should overlap")
	}
	if CirclesOverlap(0, 0, 3, 10, 0, 2) {
		t.Fatal("circles at distance 10 with radii 3+2 should not overlap")
	}
}

func TestCirclesTouchingDoNotOverlap(t *testing.T) {
	// Exactly touching is not a collision (strict less-than).
	if CirclesOverlap(0, 0, 3, 5, 0, 2) {
		t.Fatal("circles exactly touching should not overlap")
	}
}
