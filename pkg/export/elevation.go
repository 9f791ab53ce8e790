// Package export writes wall elevations as DXF and SVG drawings and
// document meshes as JSON.
package export

import (
	"fmt"
	"math"

	"github.com/chazu/voidcut/pkg/geom"
	"github.com/chazu/voidcut/pkg/model"
	"github.com/chazu/voidcut/pkg/opening"
	"github.com/samber/lo"
)

// Rect is an axis-aligned rectangle in elevation coordinates: U runs along
// the wall from its start point, V is the height above the wall base.
type Rect struct {
	U0, V0, U1, V1 float64
}

// Width is the extent along the wall.
func (r Rect) Width() float64 { return r.U1 - r.U0 }

// Height is the vertical extent.
func (r Rect) Height() float64 { return r.V1 - r.V0 }

// Labeled is a named elevation rectangle.
type Labeled struct {
	Name string
	Rect Rect
}

// Elevation is the view of one wall from its exterior side.
type Elevation struct {
	Wall         string
	Outline      Rect
	Openings     []Labeled
	Placeholders []Labeled
}

// WallElevation projects the wall, its openings and the placeholders
// touching it onto the wall plane.
func WallElevation(doc *model.Document, w *model.Wall) (*Elevation, error) {
	e := &Elevation{
		Wall:    w.Name,
		Outline: Rect{U0: 0, V0: 0, U1: w.Length(), V1: w.Height},
	}

	e.Openings = lo.Map(doc.OpeningsIn(w.Ref()), func(o *model.Opening, _ int) Labeled {
		min, max := o.Solid().BoundingBox()
		return Labeled{Name: o.Name, Rect: project(w, min, max)}
	})

	refs, err := doc.IntersectingInstances(w.Ref())
	if err != nil {
		return nil, fmt.Errorf("placeholders around wall %q: %w", w.Name, err)
	}
	for _, ref := range refs {
		el, err := doc.Element(opening.ElementID(ref))
		if err != nil {
			return nil, err
		}
		p := el.(*model.Placeholder)
		e.Placeholders = append(e.Placeholders, Labeled{Name: p.Name, Rect: project(w, p.Min, p.Max)})
	}
	return e, nil
}

// project maps a box to its elevation rectangle.
func project(w *model.Wall, min, max geom.Point) Rect {
	u0, v0 := w.Elevation(min)
	u1, v1 := w.Elevation(max)
	return Rect{
		U0: math.Min(u0, u1), V0: math.Min(v0, v1),
		U1: math.Max(u0, u1), V1: math.Max(v0, v1),
	}
}
