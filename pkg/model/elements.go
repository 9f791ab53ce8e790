package model

import (
	"fmt"
	"math"

	"github.com/chazu/voidcut/pkg/geom"
	"github.com/chazu/voidcut/pkg/kernel/brep"
	"github.com/chazu/voidcut/pkg/opening"
	"github.com/go-gl/mathgl/mgl64"
)

// Kind enumerates the element categories of a document.
type Kind int

const (
	KindWall Kind = iota
	KindPlaceholder
	KindOpening
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindPlaceholder:
		return "placeholder"
	case KindOpening:
		return "opening"
	default:
		return "unknown"
	}
}

// Element is anything stored in a document.
type Element interface {
	ID() opening.ElementID
	Label() string
	Kind() Kind
	// Solid returns the element body.
	Solid() geom.Solid
}

// ---------------------------------------------------------------------------
// Walls
// ---------------------------------------------------------------------------

// Wall is a straight wall whose location line runs along the X or Y axis.
// The body is centered on the location line and rises Height from the line.
type Wall struct {
	id        opening.ElementID
	Name      string
	Start     geom.Point
	End       geom.Point
	Height    float64
	Thickness float64

	along  int // axis of the location line
	across int // horizontal axis through the thickness
	body   *brep.Solid
}

func (w *Wall) ID() opening.ElementID { return w.id }
func (w *Wall) Label() string         { return w.Name }
func (w *Wall) Kind() Kind            { return KindWall }
func (w *Wall) Solid() geom.Solid     { return w.body }

// Ref returns the wall's host reference.
func (w *Wall) Ref() opening.WallRef { return opening.WallRef(w.id) }

// Direction is the unit vector from Start to End.
func (w *Wall) Direction() mgl64.Vec3 {
	return w.End.Vec().Sub(w.Start.Vec()).Normalize()
}

// Orientation is the exterior normal, Direction × Z.
func (w *Wall) Orientation() mgl64.Vec3 {
	return w.Direction().Cross(mgl64.Vec3{0, 0, 1})
}

// Length is the location line length.
func (w *Wall) Length() float64 {
	return w.End.Vec().Sub(w.Start.Vec()).Len()
}

// Axes returns the axis of the location line and the axis through the
// wall thickness.
func (w *Wall) Axes() (along, across int) {
	return w.along, w.across
}

// Elevation maps a model point to wall elevation coordinates: distance from
// Start along the location line, and height above the wall base.
func (w *Wall) Elevation(p geom.Point) (u, v float64) {
	u = p.Vec().Sub(w.Start.Vec()).Dot(w.Direction())
	v = p.Z - w.Start.Z
	return u, v
}

// interiorFace is the side face facing away from the orientation vector.
func (w *Wall) interiorFace() *brep.Face {
	sign := 1
	if w.Orientation()[w.across] > 0 {
		sign = -1
	}
	return w.body.Face(w.across, sign)
}

// exteriorFace is the side face the orientation vector points out of.
func (w *Wall) exteriorFace() *brep.Face {
	axis, sign := w.interiorFace().Axis()
	return w.body.Face(axis, -sign)
}

func newWall(k *brep.Kernel, name string, start, end geom.Point, height, thickness float64) (*Wall, error) {
	if height <= 0 || thickness <= 0 {
		return nil, fmt.Errorf("wall %q: height and thickness must be positive: %w", name, ErrUnsupportedWall)
	}
	if start.Z != end.Z {
		return nil, fmt.Errorf("wall %q is not level: %w", name, ErrUnsupportedWall)
	}

	w := &Wall{Name: name, Start: start, End: end, Height: height, Thickness: thickness}
	dx, dy := math.Abs(end.X-start.X), math.Abs(end.Y-start.Y)
	switch {
	case dx > 0 && dy == 0:
		w.along, w.across = 0, 1
	case dy > 0 && dx == 0:
		w.along, w.across = 1, 0
	default:
		return nil, fmt.Errorf("wall %q from %v to %v: %w", name, start, end, ErrUnsupportedWall)
	}

	lo, hi := start, end
	lo = lo.WithCoord(w.along, math.Min(start.Coord(w.along), end.Coord(w.along)))
	hi = hi.WithCoord(w.along, math.Max(start.Coord(w.along), end.Coord(w.along)))
	center := start.Coord(w.across)
	lo = lo.WithCoord(w.across, center-thickness/2)
	hi = hi.WithCoord(w.across, center+thickness/2)
	hi.Z = start.Z + height

	body, err := k.Box(lo, hi)
	if err != nil {
		return nil, fmt.Errorf("wall %q: %w", name, err)
	}
	w.body = body.(*brep.Solid)
	return w, nil
}

// ---------------------------------------------------------------------------
// Placeholders
// ---------------------------------------------------------------------------

// Placeholder is a box-shaped void family instance marking a future opening.
type Placeholder struct {
	id       opening.ElementID
	Name     string
	Min, Max geom.Point

	// Symbolic placeholders carry a zero-area symbolic solid and a plan
	// line ahead of their body, as many void families do.
	Symbolic bool

	// Degenerate placeholders carry only zero-area solids.
	Degenerate bool

	body  geom.Solid
	parts geom.Container
}

func (p *Placeholder) ID() opening.ElementID { return p.id }
func (p *Placeholder) Label() string         { return p.Name }
func (p *Placeholder) Kind() Kind            { return KindPlaceholder }
func (p *Placeholder) Solid() geom.Solid     { return p.body }

// Ref returns the placeholder's host reference.
func (p *Placeholder) Ref() opening.PlaceholderRef { return opening.PlaceholderRef(p.id) }

// PlaceholderOption configures a placeholder.
type PlaceholderOption func(*Placeholder)

// WithSymbolic adds symbolic geometry ahead of the body.
func WithSymbolic() PlaceholderOption {
	return func(p *Placeholder) { p.Symbolic = true }
}

// Degenerate strips the body, leaving only zero-area solids.
func Degenerate() PlaceholderOption {
	return func(p *Placeholder) { p.Degenerate = true }
}

func newPlaceholder(k *brep.Kernel, name string, min, max geom.Point, opts ...PlaceholderOption) (*Placeholder, error) {
	p := &Placeholder{Name: name, Min: min, Max: max}
	for _, opt := range opts {
		opt(p)
	}

	body, err := k.Box(min, max)
	if err != nil {
		return nil, fmt.Errorf("placeholder %q: %v: %w", name, err, ErrInvalidPlaceholder)
	}

	var inner geom.Container
	if p.Symbolic || p.Degenerate {
		inner = append(inner, k.Empty(), geom.Line{Start: min, End: geom.Pt(max.X, max.Y, min.Z)})
	}
	if p.Degenerate {
		inner = append(inner, k.Empty())
		p.body = k.Empty()
	} else {
		inner = append(inner, body)
		p.body = body
	}
	p.parts = geom.Container{&geom.Instance{Name: name, Geometry: inner}}
	return p, nil
}

// ---------------------------------------------------------------------------
// Openings
// ---------------------------------------------------------------------------

// Opening is a rectangular cut through a wall.
type Opening struct {
	id       opening.ElementID
	Name     string
	Wall     opening.WallRef
	Min, Max geom.Point // corners as passed by the caller

	cut geom.Solid // volume removed from the wall
}

func (o *Opening) ID() opening.ElementID { return o.id }
func (o *Opening) Label() string         { return o.Name }
func (o *Opening) Kind() Kind            { return KindOpening }
func (o *Opening) Solid() geom.Solid     { return o.cut }

// Handle returns the opening's host handle.
func (o *Opening) Handle() opening.OpeningHandle { return opening.OpeningHandle(o.id) }
