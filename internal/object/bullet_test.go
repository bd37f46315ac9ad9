package object

import (
	"testing"

	"planetoids/internal/geom"
)

func TestNewBulletVelocity(t *testing.T) {
	b := NewBullet(geom.Vector2{X: 100, Y: 100}, 90)
	if !almostEqual(b.Velocity.Magnitude(), BulletSpeed) {
		t.Fatalf("expected speed %v, got %v", BulletSpeed, b.Velocity.Magnitude())
	}
	// 90 degrees points right.
	if !almostEqual(b.Velocity.X, BulletSpeed) || !almostEqual(b.Velocity.Y, 0) {
		t.Fatalf("expected velocity (%v,0), got (%v,%v)", BulletSpeed, b.Velocity.X, b.Velocity.Y)
	}
}

func TestBulletExpires(t *testing.T) {
	b := NewBullet(geom.Vector2{X: 100, Y: 100}, 0)
	b.Update(1.9, testField)
	if !b.Active {
		t.Fatal("bullet should still be alive at 1.9s")
	}
	b.Update(0.2, testField)
	if b.Active {
		t.Fatal("bullet should expire after 2s")
	}
}

func TestBulletVelocityConstant(t *testing.T) {
	b := NewBullet(geom.Vector2{X: 100, Y: 100}, 45)
	before := b.Velocity
	b.Update(0.5, testField)
	if b.Velocity != before {
		t.Fatal("bullet velocity must not change after creation")
	}
}
