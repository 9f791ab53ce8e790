// Package brep implements kernel.Kernel with an exact boundary
// representation of axis-aligned boxes. It is the geometry engine of the
// reference host model: walls and placeholders are boxes, and the boolean
// intersection of two boxes is again a box, so every result is exact up to
// the kernel tolerance.
package brep

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/voidcut/pkg/geom"
	"github.com/chazu/voidcut/pkg/kernel"
	"github.com/go-gl/mathgl/mgl64"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// DefaultTolerance is used when New is given a non-positive tolerance.
const DefaultTolerance = 1e-6

// ErrUnsupportedSolid is returned for solids this kernel did not create.
var ErrUnsupportedSolid = errors.New("brep: unsupported solid")

// Kernel is the box B-rep kernel. The zero value is not usable; call New.
type Kernel struct {
	tol float64
}

// New returns a kernel comparing coordinates within tol.
func New(tol float64) *Kernel {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	return &Kernel{tol: tol}
}

// Tolerance returns the length below which two coordinates are equal.
func (k *Kernel) Tolerance() float64 {
	return k.tol
}

// Box creates a box spanning min to max. Every extent must exceed the
// tolerance.
func (k *Kernel) Box(min, max geom.Point) (geom.Solid, error) {
	for i := 0; i < 3; i++ {
		if max.Coord(i)-min.Coord(i) <= k.tol {
			return nil, fmt.Errorf("brep: box %v-%v has no extent on axis %d", min, max, i)
		}
	}
	return newBox(min, max, k.tol), nil
}

// Empty returns a solid with no faces and zero surface area.
func (k *Kernel) Empty() geom.Solid {
	return &Solid{tol: k.tol}
}

// Intersection returns the common volume of a and b. When the boxes only
// touch or are apart, the result is the empty solid.
func (k *Kernel) Intersection(a, b geom.Solid) (geom.Solid, error) {
	sa, err := k.unwrap(a)
	if err != nil {
		return nil, err
	}
	sb, err := k.unwrap(b)
	if err != nil {
		return nil, err
	}
	if sa.IsEmpty() || sb.IsEmpty() {
		return k.Empty(), nil
	}

	var lo, hi geom.Point
	for i := 0; i < 3; i++ {
		l := math.Max(sa.min.Coord(i), sb.min.Coord(i))
		h := math.Min(sa.max.Coord(i), sb.max.Coord(i))
		if h-l <= k.tol {
			return k.Empty(), nil
		}
		lo = lo.WithCoord(i, l)
		hi = hi.WithCoord(i, h)
	}
	return newBox(lo, hi, k.tol), nil
}

// ToMesh triangulates every face into two triangles. Normals are per face.
func (k *Kernel) ToMesh(s geom.Solid) (*kernel.Mesh, error) {
	solid, err := k.unwrap(s)
	if err != nil {
		return nil, err
	}

	numFaces := len(solid.faces)
	vertices := make([]float32, 0, numFaces*4*3)
	normals := make([]float32, 0, numFaces*4*3)
	indices := make([]uint32, 0, numFaces*6)

	for i, f := range solid.faces {
		corners := geom.SampleLoop(f.EdgeLoops()[0])
		n := faceNormal(corners)
		for _, c := range corners {
			vertices = append(vertices, float32(c.X), float32(c.Y), float32(c.Z))
			normals = append(normals, float32(n.X()), float32(n.Y()), float32(n.Z()))
		}
		base := uint32(i * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

// unwrap extracts the box representation of a geom.Solid.
func (k *Kernel) unwrap(s geom.Solid) (*Solid, error) {
	b, ok := s.(*Solid)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSolid, s)
	}
	return b, nil
}

// faceNormal returns the unit normal of a planar polygon from its first
// three corners. Loops are counter-clockwise about the outward normal.
func faceNormal(corners []geom.Point) mgl64.Vec3 {
	e1 := corners[1].Vec().Sub(corners[0].Vec())
	e2 := corners[2].Vec().Sub(corners[0].Vec())
	return e1.Cross(e2).Normalize()
}
