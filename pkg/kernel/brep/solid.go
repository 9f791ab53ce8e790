package brep

import "github.com/chazu/voidcut/pkg/geom"

var _ geom.Solid = (*Solid)(nil)

// Solid is an axis-aligned box, or the empty solid when it has no faces.
type Solid struct {
	min, max geom.Point
	faces    []geom.Face
	tol      float64
}

// newBox builds the six faces of a box in the order -X, +X, -Y, +Y, -Z, +Z.
func newBox(min, max geom.Point, tol float64) *Solid {
	s := &Solid{min: min, max: max, tol: tol}
	for axis := 0; axis < 3; axis++ {
		s.faces = append(s.faces,
			newFace(min, max, axis, -1, tol),
			newFace(min, max, axis, +1, tol),
		)
	}
	return s
}

// Faces returns the boundary faces. The empty solid has none.
func (s *Solid) Faces() []geom.Face {
	return s.faces
}

// SurfaceArea returns the sum of the face areas.
func (s *Solid) SurfaceArea() float64 {
	var area float64
	for _, f := range s.faces {
		area += f.Area()
	}
	return area
}

// BoundingBox returns the box corners. The empty solid returns zero points.
func (s *Solid) BoundingBox() (min, max geom.Point) {
	return s.min, s.max
}

// IsEmpty reports whether the solid has no volume.
func (s *Solid) IsEmpty() bool {
	return len(s.faces) == 0
}

// Face returns the face with the given outward axis direction.
func (s *Solid) Face(axis, sign int) *Face {
	for _, f := range s.faces {
		bf := f.(*Face)
		if bf.axis == axis && bf.sign == sign {
			return bf
		}
	}
	return nil
}
