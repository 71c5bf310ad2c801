// Package track holds the fixed curves of the track overview and samples them
// by arclength fraction.
package track

import (
	"math"
	"sort"
)

// Point is a position in overview coordinates (a 1000x600 plane, y down).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

func (p Point) dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Curve is an immutable 2-D path parameterised by arclength fraction in [0, 1].
type Curve interface {
	PointAt(t float64) Point
	Length() float64
}

// Clamp01 limits t to [0, 1]. NaN maps to 0.
func Clamp01(t float64) float64 {
	if t > 1 {
		return 1
	}
	if t > 0 {
		return t
	}
	return 0
}

// Line is a straight segment.
type Line struct {
	From, To Point
}

func (l Line) PointAt(t float64) Point {
	t = Clamp01(t)
	if t == 1 {
		return l.To
	}
	return l.From.lerp(l.To, t)
}

func (l Line) Length() float64 { return l.From.dist(l.To) }

// Quad is a quadratic Bézier segment.
type Quad struct {
	P0, P1, P2 Point
}

func (q Quad) eval(t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// samplesPerQuad is the flattening resolution used to build the arclength table.
const samplesPerQuad = 128

// QuadPath is a chain of quadratic Béziers sampled by arclength. Sampling goes
// through a flattened polyline with a cumulative length table, so PointAt is a
// binary search plus one interpolation.
type QuadPath struct {
	pts []Point
	cum []float64
}

// NewQuadPath flattens segs into an arclength table. Consecutive segments are
// expected to share endpoints. It panics when called without segments.
func NewQuadPath(segs ...Quad) *QuadPath {
	if len(segs) == 0 {
		panic("track: NewQuadPath needs at least one segment")
	}
	n := len(segs)*samplesPerQuad + 1
	qp := &QuadPath{
		pts: make([]Point, 0, n),
		cum: make([]float64, 0, n),
	}
	qp.pts = append(qp.pts, segs[0].P0)
	qp.cum = append(qp.cum, 0)
	for _, s := range segs {
		for i := 1; i <= samplesPerQuad; i++ {
			var p Point
			if i == samplesPerQuad {
				p = s.P2
			} else {
				p = s.eval(float64(i) / samplesPerQuad)
			}
			last := qp.pts[len(qp.pts)-1]
			qp.pts = append(qp.pts, p)
			qp.cum = append(qp.cum, qp.cum[len(qp.cum)-1]+last.dist(p))
		}
	}
	return qp
}

func (qp *QuadPath) Length() float64 { return qp.cum[len(qp.cum)-1] }

func (qp *QuadPath) PointAt(t float64) Point {
	t = Clamp01(t)
	last := len(qp.pts) - 1
	if t == 0 {
		return qp.pts[0]
	}
	if t == 1 {
		return qp.pts[last]
	}
	target := t * qp.Length()
	i := sort.SearchFloat64s(qp.cum, target)
	if i == 0 {
		return qp.pts[0]
	}
	if i > last {
		return qp.pts[last]
	}
	a, b := qp.cum[i-1], qp.cum[i]
	if b == a {
		return qp.pts[i]
	}
	return qp.pts[i-1].lerp(qp.pts[i], (target-a)/(b-a))
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies inside r, allowing eps of slack on every side.
func (r Rect) Contains(p Point, eps float64) bool {
	return p.X >= r.Min.X-eps && p.X <= r.Max.X+eps &&
		p.Y >= r.Min.Y-eps && p.Y <= r.Max.Y+eps
}

// Union returns the smallest box enclosing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, o.Min.X), Y: math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, o.Max.X), Y: math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Bounds samples c and returns the box enclosing it.
func Bounds(c Curve) Rect {
	const n = 512
	p := c.PointAt(0)
	r := Rect{Min: p, Max: p}
	for i := 1; i <= n; i++ {
		p = c.PointAt(float64(i) / n)
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}
