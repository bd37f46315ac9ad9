package object

import (
	"math"
	"testing"

	"planetoids/internal/geom"
)

var testField = Playfield{Width: 800, Height: 600}

func TestWrapNegative(t *testing.T) {
	pos := geom.Vector2{X: -9, Y: -9}
	testField.Wrap(&pos)
	if pos.X != 791 || pos.Y != 591 {
		t.Fatalf("expected (791,591), got (%v,%v)", pos.X, pos.Y)
	}
}

func TestWrapOverflow(t *testing.T) {
	pos := geom.Vector2{X: 805, Y: 1205}
	testField.Wrap(&pos)
	if pos.X != 5 || pos.Y != 5 {
		t.Fatalf("expected (5,5), got (%v,%v)", pos.X, pos.Y)
	}
}

func TestMoveStaysInField(t *testing.T) {
	e := Entity{
		Position: geom.Vector2{X: 1, Y: 1},
		Velocity: geom.Vector2{X: -500, Y: 700},
		Active:   true,
	}
	for i := 0; i < 100; i++ {
		e.Move(1.0/60, testField)
		if e.Position.X < 0 || e.Position.X >= testField.Width ||
			e.Position.Y < 0 || e.Position.Y >= testField.Height {
			t.Fatalf("position out of field after move: (%v,%v)", e.Position.X, e.Position.Y)
		}
	}
}

func TestCollidesWith(t *testing.T) {
	a := Entity{Position: geom.Vector2{X: 0, Y: 0}, Radius: 10, Active: true}
	b := Entity{Position: geom.Vector2{X: 15, Y: 0}, Radius: 10, Active: true}
	if !a.CollidesWith(&b) {
		t.Fatal("overlapping circles should collide")
	}
}

func TestCollidesWithInactive(t *testing.T) {
	a := Entity{Position: geom.Vector2{X: 0, Y: 0}, Radius: 10, Active: true}
	b := Entity{Position: geom.Vector2{X: 0, Y: 0}, Radius: 10, Active: false}
	if a.CollidesWith(&b) {
		t.Fatal("inactive entities must never collide")
	}
}

func TestCollidesWithBoundary(t *testing.T) {
	// Exactly touching circles do not collide.
	a := Entity{Position: geom.Vector2{X: 0, Y: 0}, Radius: 10, Active: true}
	b := Entity{Position: geom.Vector2{X: 20, Y: 0}, Radius: 10, Active: true}
	if a.CollidesWith(&b) {
		t.Fatal("circles exactly touching should not collide")
	}
}

func TestDamageTypeCaption(t *testing.T) {
	if DamageHyperspace.String() != "Hyperspace Malfunction!" {
		t.Fatalf("unexpected caption: %q", DamageHyperspace.String())
	}
	if DamageNone.String() != "" {
		t.Fatalf("DamageNone should have no caption, got %q", DamageNone.String())
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
