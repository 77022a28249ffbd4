package viz

import (
	"strings"
)

// Braille patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille-cell bitmap. Drawing works in sub-pixel
// coordinates: (Width*2) x (Height*4).
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

// Set lights the sub-pixel at (x, y). Out-of-range coordinates are
// ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets every cell to the empty Braille character.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
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

// DrawSeries plots values across the full canvas width, connecting
// consecutive samples. The vertical range [lo, hi] maps to the canvas
// height; values outside it clip at the edges.
func (c *Canvas) DrawSeries(values []float64, lo, hi float64) {
	if len(values) == 0 || hi <= lo {
		return
	}

	cw, ch := c.Width*2, c.Height*4
	toY := func(v float64) int {
		y := int((hi - v) / (hi - lo) * float64(ch-1))
		if y < 0 {
			y = 0
		}
		if y >= ch {
			y = ch - 1
		}
		return y
	}

	if len(values) == 1 {
		c.Set(0, toY(values[0]))
		return
	}

	prevX, prevY := 0, toY(values[0])
	for i := 1; i < len(values); i++ {
		x := i * (cw - 1) / (len(values) - 1)
		y := toY(values[i])
		c.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}
}

// DrawVerticalMarker draws a dotted vertical line at sub-pixel column x.
func (c *Canvas) DrawVerticalMarker(x int) {
	for y := 0; y < c.Height*4; y += 3 {
		c.Set(x, y)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
