package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a position in model space, in the host's native length unit.
type Point struct {
	X, Y, Z float64
}

// Pt is shorthand for Point{X: x, Y: y, Z: z}.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// FromVec converts an mgl64 vector to a Point.
func FromVec(v mgl64.Vec3) Point {
	return Point{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Vec returns the point as an mgl64 vector.
func (p Point) Vec() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// Coord returns the coordinate on axis i (0 = X, 1 = Y, 2 = Z).
func (p Point) Coord(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	}
	panic(fmt.Sprintf("geom: axis %d out of range", i))
}

// WithCoord returns a copy of p with the coordinate on axis i replaced.
func (p Point) WithCoord(i int, v float64) Point {
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	case 2:
		p.Z = v
	default:
		panic(fmt.Sprintf("geom: axis %d out of range", i))
	}
	return p
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return FromVec(p.Vec().Add(q.Vec()))
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return FromVec(p.Vec().Sub(q.Vec()))
}

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point {
	return FromVec(p.Vec().Add(q.Vec()).Mul(0.5))
}

// ApproxEqual reports whether every coordinate of p and q differs by at most tol.
func (p Point) ApproxEqual(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol && math.Abs(p.Z-q.Z) <= tol
}

// LessEqual reports whether p <= q on every axis.
func (p Point) LessEqual(q Point) bool {
	return p.X <= q.X && p.Y <= q.Y && p.Z <= q.Z
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
