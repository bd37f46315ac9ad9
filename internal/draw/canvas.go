package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Color indexes into the canvas palette. Index 0 means "pixel not set".
const (
	ColorNone    uint8 = 0
	ColorDefault uint8 = 1 // Terminal foreground
	ColorShip    uint8 = 2 // Rebound every frame to the ship's flash color
	paletteSize        = 8
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Logical playfield coordinates are scaled to terminal pixels,
// so game code never sees the terminal size. Each pixel carries a palette
// color so the ship can flash its damage color.
type Canvas struct {
	termWidth      int // Terminal columns
	termHeight     int // Terminal rows
	subPixelHeight int // termHeight * 2

	pixels []uint8 // Flat [y*termWidth + x]; 0 = unset, else palette index

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	color   uint8 // Current drawing color
	palette [paletteSize]string

	// Reusable buffers to reduce per-frame allocations
	renderBuf       strings.Builder
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewCanvas creates a canvas that scales from the logical playfield size
// to the given terminal dimensions.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		color:         ColorDefault,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions, keeping the
// logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]uint8, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// Clear resets all pixels and the drawing color.
func (c *Canvas) Clear() {
	clear(c.pixels)
	c.color = ColorDefault
}

// SetColor selects the palette color for subsequent drawing calls.
func (c *Canvas) SetColor(idx uint8) {
	if idx >= 1 && idx < paletteSize {
		c.color = idx
	}
}

// SetPaletteRGB binds a palette slot to a 24-bit foreground color.
func (c *Canvas) SetPaletteRGB(idx uint8, r, g, b uint8) {
	if idx >= 2 && idx < paletteSize {
		c.palette[idx] = fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
	}
}

// setPixel sets a pixel at terminal sub-pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = c.color
	}
}

// SetFloat sets a pixel at logical coordinates.
func (c *Canvas) SetFloat(x, y float64) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	c.setPixel(px, py)
}

// DrawLine draws a line between logical coordinates using Bresenham's
// algorithm in pixel space.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon outline; if filled is true the interior is
// filled with a scanline pass first.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawEllipse draws an axis-aligned ellipse outline centered at (cx, cy)
// with logical radii rx and ry.
func (c *Canvas) DrawEllipse(cx, cy, rx, ry float64) {
	const segments = 24
	prev := Point{X: cx + rx, Y: cy}
	for i := 1; i <= segments; i++ {
		t := 2 * math.Pi * float64(i) / segments
		next := Point{X: cx + rx*math.Cos(t), Y: cy + ry*math.Sin(t)}
		c.DrawLine(prev, next)
		prev = next
	}
}

// fillPolygon fills a polygon using a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once; 1400 stays under a
// typical MTU for smooth flow over SSH.
const maxChunkSize = 1400

// Render outputs the canvas using half-block characters, switching the
// foreground color as pixel colors change.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12)

	current := ColorNone
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			var bottom uint8
			if row*2+1 < c.subPixelHeight {
				bottom = c.pixels[bottomOffset+col]
			}

			var ch rune
			var color uint8
			switch {
			case top != ColorNone && bottom != ColorNone:
				ch, color = BlockFull, top
			case top != ColorNone:
				ch, color = BlockUpperHalf, top
			case bottom != ColorNone:
				ch, color = BlockLowerHalf, bottom
			default:
				continue
			}

			if color != current {
				if c.palette[color] == "" {
					c.renderBuf.WriteString("\033[0m")
				} else {
					c.renderBuf.WriteString(c.palette[color])
				}
				current = color
			}
			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1, col+1, ch)
		}
	}
	if current != ColorNone {
		c.renderBuf.WriteString("\033[0m")
	}

	// Write output in MTU-sized chunks
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// TerminalWidth returns the terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// BorrowPoints returns a reusable point slice of length n, valid until the
// next call. Avoids per-frame allocations when building polygons.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
