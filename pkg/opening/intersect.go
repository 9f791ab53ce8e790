package opening

import (
	"github.com/chazu/voidcut/pkg/geom"
	"github.com/chazu/voidcut/pkg/kernel"
)

// Intersect returns the common volume of the placeholder and the wall. The
// kernel is always called with the placeholder first. A faceless result
// means the two do not overlap and yields ErrEmptyIntersection.
func Intersect(k kernel.Intersector, placeholder, wall geom.Solid) (geom.Solid, error) {
	s, err := k.Intersection(placeholder, wall)
	if err != nil {
		return nil, hostErr("booleanIntersect", err)
	}
	if s == nil || len(s.Faces()) == 0 {
		return nil, ErrEmptyIntersection
	}
	return s, nil
}
