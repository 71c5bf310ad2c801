package track

// Layout is the fixed set of curves shown in the track overview. Both loops
// start and end on the main line's endpoints.
type Layout struct {
	Main       Curve
	TopLoop    Curve
	BottomLoop Curve
}

// DefaultLayout returns the main line from (50,300) to (950,300) and two
// symmetric loops bulging 200 units above and below it.
func DefaultLayout() Layout {
	west := Point{X: 50, Y: 300}
	east := Point{X: 950, Y: 300}
	return Layout{
		Main: Line{From: west, To: east},
		TopLoop: NewQuadPath(
			Quad{P0: west, P1: Point{X: 250, Y: 100}, P2: Point{X: 500, Y: 100}},
			Quad{P0: Point{X: 500, Y: 100}, P1: Point{X: 750, Y: 100}, P2: east},
		),
		BottomLoop: NewQuadPath(
			Quad{P0: west, P1: Point{X: 250, Y: 500}, P2: Point{X: 500, Y: 500}},
			Quad{P0: Point{X: 500, Y: 500}, P1: Point{X: 750, Y: 500}, P2: east},
		),
	}
}

// Curves returns the layout's curves in drawing order.
func (l Layout) Curves() []Curve {
	return []Curve{l.TopLoop, l.BottomLoop, l.Main}
}

// Bounds is the box enclosing every curve of the layout.
func (l Layout) Bounds() Rect {
	curves := l.Curves()
	r := Bounds(curves[0])
	for _, c := range curves[1:] {
		r = r.Union(Bounds(c))
	}
	return r
}

// Name returns a stable name for one of the layout's curves, or "" if c is not
// part of the layout.
func (l Layout) Name(c Curve) string {
	switch c {
	case nil:
		return ""
	case l.Main:
		return "main"
	case l.TopLoop:
		return "top-loop"
	case l.BottomLoop:
		return "bottom-loop"
	}
	return ""
}
