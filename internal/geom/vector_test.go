package geom

import (
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	v := Vector2{X: 1, Y: 2}.Add(Vector2{X: 3, Y: -5})
	if v.X != 4 || v.Y != -3 {
		t.Fatalf("expected (4,-3), got (%v,%v)", v.X, v.Y)
	}
}

func TestScale(t *testing.T) {
	v := Vector2{X: 2, Y: -3}.Scale(2.5)
	if v.X != 5 || v.Y != -7.5 {
		t.Fatalf("expected (5,-7.5), got (%v,%v)", v.X, v.Y)
	}
}

func TestMagnitude(t *testing.T) {
	m := Vector2{X: 3, Y: 4}.Magnitude()
	if m != 5 {
		t.Fatalf("expected magnitude 5, got %v", m)
	}
}

func TestNormalize(t *testing.T) {
	n := Vector2{X: 0, Y: -10}.Normalize()
	if n.X != 0 || n.Y != -1 {
		t.Fatalf("expected (0,-1), got (%v,%v)", n.X, n.Y)
	}
}

func TestNormalizeZero(t *testing.T) {
	n := Vector2{}.Normalize()
	if n.X != 0 || n.Y != 0 {
		t.Fatalf("zero vector should normalize to itself, got (%v,%v)", n.X, n.Y)
	}
}

func TestHeadingUp(t *testing.T) {
	h := Heading(0)
	if math.Abs(h.X) > 1e-12 || math.Abs(h.Y+1) > 1e-12 {
		t.Fatalf("0 degrees should point up, got (%v,%v)", h.X, h.Y)
	}
}

func TestHeadingRight(t *testing.T) {
	h := Heading(90)
	if math.Abs(h.X-1) > 1e-12 || math.Abs(h.Y) > 1e-12 {
		t.Fatalf("90 degrees should point right, got (%v,%v)", h.X, h.Y)
	}
}
