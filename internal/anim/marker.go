package anim

import "github.com/cabinside/cabinctl/internal/track"

// Marker is a moving glyph on the track overview. At any instant it is bound
// to exactly one curve at one fraction in [0, 1].
type Marker struct {
	ID    string
	Label string

	curve track.Curve
	frac  float64
	pos   track.Point
	moves uint64
}

// NewMarker returns an unplaced marker.
func NewMarker(id, label string) *Marker {
	return &Marker{ID: id, Label: label}
}

// Place binds m to curve at fraction, clamped to [0, 1], and moves it there.
func (m *Marker) Place(curve track.Curve, fraction float64) {
	f := track.Clamp01(fraction)
	m.curve = curve
	m.frac = f
	m.pos = curve.PointAt(f)
	m.moves++
}

// Position, Curve and Fraction report where the last Place put the marker.
func (m *Marker) Position() track.Point { return m.pos }
func (m *Marker) Curve() track.Curve    { return m.curve }
func (m *Marker) Fraction() float64     { return m.frac }

// Moves counts position writes since creation.
func (m *Marker) Moves() uint64 { return m.moves }

// Placed reports whether the marker has been put on a curve yet.
func (m *Marker) Placed() bool { return m.curve != nil }
