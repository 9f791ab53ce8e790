package brep

import (
	"github.com/chazu/voidcut/pkg/geom"
)

var _ geom.Face = (*Face)(nil)

// Face is one planar, axis-aligned rectangle of a box boundary.
type Face struct {
	axis     int // axis of the outward normal
	sign     int // +1 or -1 along axis
	min, max geom.Point
	loop     geom.EdgeLoop
	tol      float64
}

// newFace builds the face of box [min, max] whose outward normal points
// along sign*axis.
func newFace(min, max geom.Point, axis, sign int, tol float64) *Face {
	plane := min.Coord(axis)
	if sign > 0 {
		plane = max.Coord(axis)
	}
	f := &Face{
		axis: axis,
		sign: sign,
		min:  min.WithCoord(axis, plane),
		max:  max.WithCoord(axis, plane),
		tol:  tol,
	}

	// (u, v, axis) is a right-handed frame, so this order runs
	// counter-clockwise about +axis.
	u, v := (axis+1)%3, (axis+2)%3
	corner := func(cu, cv float64) geom.Point {
		return f.min.WithCoord(u, cu).WithCoord(v, cv)
	}
	u0, u1 := f.min.Coord(u), f.max.Coord(u)
	v0, v1 := f.min.Coord(v), f.max.Coord(v)
	corners := []geom.Point{corner(u0, v0), corner(u1, v0), corner(u1, v1), corner(u0, v1)}
	if sign < 0 {
		corners[1], corners[3] = corners[3], corners[1]
	}
	f.loop = geom.PolygonLoop(corners...)
	return f
}

// EdgeLoops returns the single rectangular outer loop.
func (f *Face) EdgeLoops() []geom.EdgeLoop {
	return []geom.EdgeLoop{f.loop}
}

// Area returns the rectangle area.
func (f *Face) Area() float64 {
	u, v := (f.axis+1)%3, (f.axis+2)%3
	return (f.max.Coord(u) - f.min.Coord(u)) * (f.max.Coord(v) - f.min.Coord(v))
}

// Axis returns the normal axis and its direction.
func (f *Face) Axis() (axis, sign int) {
	return f.axis, f.sign
}

// Plane returns the coordinate of the face plane on its normal axis.
func (f *Face) Plane() float64 {
	return f.min.Coord(f.axis)
}

// Bounds returns the rectangle as a degenerate box.
func (f *Face) Bounds() (min, max geom.Point) {
	return f.min, f.max
}

// Intersect reports whether the two closed rectangles share a point within
// tolerance. Faces from another kernel never intersect.
func (f *Face) Intersect(other geom.Face) geom.FaceIntersection {
	o, ok := other.(*Face)
	if !ok {
		return geom.NonIntersecting
	}
	for i := 0; i < 3; i++ {
		if f.min.Coord(i) > o.max.Coord(i)+f.tol || o.min.Coord(i) > f.max.Coord(i)+f.tol {
			return geom.NonIntersecting
		}
	}
	return geom.Intersecting
}
