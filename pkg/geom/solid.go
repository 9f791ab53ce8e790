package geom

import "github.com/samber/lo"

// FaceIntersection is the result of testing one face against another.
type FaceIntersection int

const (
	Intersecting FaceIntersection = iota
	NonIntersecting
)

func (r FaceIntersection) String() string {
	switch r {
	case Intersecting:
		return "intersecting"
	case NonIntersecting:
		return "non-intersecting"
	default:
		return "unknown"
	}
}

// Face is a bounded region of a solid's boundary.
type Face interface {
	// EdgeLoops returns the face boundary; index 0 is the outer loop.
	EdgeLoops() []EdgeLoop
	Area() float64
	// Intersect tests whether the face shares any point with other, using
	// the backing kernel's tolerance.
	Intersect(other Face) FaceIntersection
}

// Solid is a closed 3D body.
type Solid interface {
	Faces() []Face
	SurfaceArea() float64
	BoundingBox() (min, max Point)
}

// Object is one entry of a host geometry container: a Solid, an *Instance,
// or any other host geometry (symbolic curves and the like).
type Object any

// Container is host-provided geometry for one element.
type Container []Object

// Instance is nested geometry of a placed family instance, already
// transformed into model space.
type Instance struct {
	Name     string
	Geometry Container
}

// Solids returns the solids of c in order, skipping everything else.
func (c Container) Solids() []Solid {
	return lo.FilterMap(c, func(o Object, _ int) (Solid, bool) {
		s, ok := o.(Solid)
		return s, ok
	})
}
