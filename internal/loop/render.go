package loop

import (
	"planetoids/internal/draw"
	"planetoids/internal/geom"
	"planetoids/internal/object"
)

// renderEntities draws every active entity onto the canvas. The renderer
// only reads simulation state.
func renderEntities(g *Game, canvas *draw.Canvas) {
	canvas.SetColor(draw.ColorDefault)

	for _, a := range g.Asteroids {
		if a.Active {
			drawShape(canvas, a.Shape(), false)
		}
	}

	for _, b := range g.Bullets {
		if b.Active {
			canvas.SetFloat(b.Position.X, b.Position.Y)
		}
	}
	for _, b := range g.AlienBullets {
		if b.Active {
			canvas.SetFloat(b.Position.X, b.Position.Y)
		}
	}

	for _, alien := range g.AlienShips {
		if alien.Active {
			drawAlien(canvas, alien)
		}
	}

	if g.Ship != nil && g.Ship.Visible() {
		r, gr, b := g.Ship.FlashColor()
		canvas.SetPaletteRGB(draw.ColorShip, r, gr, b)
		canvas.SetColor(draw.ColorShip)
		drawShape(canvas, g.Ship.Shape(), true)
		canvas.SetColor(draw.ColorDefault)
	}
}

// drawShape draws a world-space polygon onto the canvas.
func drawShape(canvas *draw.Canvas, shape []geom.Vector2, filled bool) {
	points := canvas.BorrowPoints(len(shape))
	for i, v := range shape {
		points[i] = draw.Point{X: v.X, Y: v.Y}
	}
	canvas.DrawPolygon(points, filled)
}

// drawAlien draws the classic two-ellipse saucer outline.
func drawAlien(canvas *draw.Canvas, alien *object.AlienShip) {
	x, y := alien.Position.X, alien.Position.Y
	canvas.DrawEllipse(x, y, 12, 6)    // Hull
	canvas.DrawEllipse(x, y-6, 6, 4)   // Canopy
}
