package ui

import (
	"strings"

	"github.com/cabinside/cabinctl/internal/track"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// canvas rasterises the overview plane onto braille cells, giving each
// terminal cell a 2x4 dot grid.
type canvas struct {
	view       track.Rect
	cols, rows int
	dots       [][]uint8
	glyphs     map[[2]int]glyph
}

type glyph struct {
	r    rune
	kind int
}

const (
	glyphA = iota
	glyphB
)

// newCanvas returns a cols x rows canvas that stretches view over every cell.
func newCanvas(cols, rows int, view track.Rect) *canvas {
	cols = max(cols, 8)
	rows = max(rows, 3)
	dots := make([][]uint8, rows)
	for r := range dots {
		dots[r] = make([]uint8, cols)
	}
	return &canvas{view: view, cols: cols, rows: rows, dots: dots, glyphs: map[[2]int]glyph{}}
}

// project maps a plane point to dot coordinates.
func (c *canvas) project(p track.Point) (int, int) {
	w := max(c.view.Max.X-c.view.Min.X, 1)
	h := max(c.view.Max.Y-c.view.Min.Y, 1)
	dx := int((p.X - c.view.Min.X) / w * float64(c.cols*2-1))
	dy := int((p.Y - c.view.Min.Y) / h * float64(c.rows*4-1))
	return dx, dy
}

func (c *canvas) set(dx, dy int) {
	if dx < 0 || dy < 0 || dx >= c.cols*2 || dy >= c.rows*4 {
		return
	}
	c.dots[dy/4][dx/2] |= 1 << brailleBits[dx%2][dy%4]
}

// stroke plots enough samples of curve to leave no gaps between dots.
func (c *canvas) stroke(curve track.Curve) {
	w := max(c.view.Max.X-c.view.Min.X, 1)
	n := max(int(curve.Length()/w*float64(c.cols*2))*3, 16)
	for i := 0; i <= n; i++ {
		c.set(c.project(curve.PointAt(float64(i) / float64(n))))
	}
}

// mark puts a glyph in the cell containing p, on top of any dots. Points
// outside the view are dropped.
func (c *canvas) mark(p track.Point, g glyph) {
	if !c.view.Contains(p, 1e-6) {
		return
	}
	dx, dy := c.project(p)
	col, row := min(max(dx/2, 0), c.cols-1), min(max(dy/4, 0), c.rows-1)
	c.glyphs[[2]int{col, row}] = g
}

func (c *canvas) render() string {
	lines := make([]string, c.rows)
	for r := range c.rows {
		var line, run strings.Builder
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(trackStyle.Render(run.String()))
				run.Reset()
			}
		}
		for col := range c.cols {
			if g, ok := c.glyphs[[2]int{col, r}]; ok {
				flush()
				style := markerAStyle
				if g.kind == glyphB {
					style = markerBStyle
				}
				line.WriteString(style.Render(string(g.r)))
				continue
			}
			run.WriteRune(rune(0x2800 + int(c.dots[r][col])))
		}
		flush()
		lines[r] = line.String()
	}
	return strings.Join(lines, "\n")
}
