package viz

import (
	"math"
	"strings"

	"github.com/johnxnguyen/newton/internal/geometry"
)

// Braille cells pack 2x4 dots per terminal character:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800.
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot matrix. Width and Height are in characters;
// the drawable area is (Width*2) x (Height*4) dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the dot at (x, y) in dot coordinates, y growing downward.
// Out-of-range dots are dropped.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine walks Bresenham between two dots.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Viewport maps a world rectangle onto the canvas dot grid, flipping y
// so world up is screen up.
type Viewport struct {
	canvas                 *Canvas
	minX, minY, maxX, maxY float64
}

func NewViewport(c *Canvas, minX, minY, maxX, maxY float64) *Viewport {
	if maxX <= minX {
		maxX = minX + 1
	}
	if maxY <= minY {
		maxY = minY + 1
	}
	return &Viewport{canvas: c, minX: minX, minY: minY, maxX: maxX, maxY: maxY}
}

// FitViewport frames all points with a fractional margin, centered and
// square so circles stay circular.
func FitViewport(c *Canvas, points []geometry.Vec, margin float64) *Viewport {
	if len(points) == 0 {
		return NewViewport(c, -1, -1, 1, 1)
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	half := math.Max(maxX-minX, maxY-minY) / 2
	if half == 0 {
		half = 1
	}
	half *= 1 + margin
	return NewViewport(c, cx-half, cy-half, cx+half, cy+half)
}

func (v *Viewport) dot(p geometry.Vec) (int, int) {
	w := float64(v.canvas.Width*2 - 1)
	h := float64(v.canvas.Height*4 - 1)
	x := (p.X - v.minX) / (v.maxX - v.minX) * w
	y := (1 - (p.Y-v.minY)/(v.maxY-v.minY)) * h
	return int(math.Round(x)), int(math.Round(y))
}

// Plot lights the dot nearest to a world point.
func (v *Viewport) Plot(p geometry.Vec) {
	x, y := v.dot(p)
	v.canvas.Set(x, y)
}

// Line draws a world-space segment.
func (v *Viewport) Line(a, b geometry.Vec) {
	x0, y0 := v.dot(a)
	x1, y1 := v.dot(b)
	v.canvas.DrawLine(x0, y0, x1, y1)
}

// Mark blots a 3x3 dot cross, big enough to spot the central mass.
func (v *Viewport) Mark(p geometry.Vec) {
	x, y := v.dot(p)
	for _, d := range [][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		v.canvas.Set(x+d[0], y+d[1])
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
