// Package sdfx renders and probes solids with the github.com/deadsy/sdfx
// SDF-based CAD library. Every solid is rebuilt as a signed distance field
// from its bounding box, which is exact for the box solids of the reference
// host.
package sdfx

import (
	"fmt"

	"github.com/chazu/voidcut/pkg/geom"
	"github.com/chazu/voidcut/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Mesher = (*SdfxKernel)(nil)

// DefaultMeshCells controls marching cubes tessellation resolution.
const DefaultMeshCells = 200

// SdfxKernel meshes and probes geom.Solid values through sdfx.
type SdfxKernel struct {
	cells int
}

// New returns a kernel tessellating with the given number of marching cubes
// cells along the longest axis. Non-positive values use DefaultMeshCells.
func New(cells int) *SdfxKernel {
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	return &SdfxKernel{cells: cells}
}

// toSDF builds the distance field of the solid's bounding box.
// sdf.Box3D centers the box at the origin, so we translate to the box center.
func toSDF(s geom.Solid) (sdf.SDF3, error) {
	if len(s.Faces()) == 0 {
		return nil, fmt.Errorf("sdfx: solid has no faces")
	}
	min, max := s.BoundingBox()
	size := max.Sub(min)
	box, err := sdf.Box3D(v3.Vec{X: size.X, Y: size.Y, Z: size.Z}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Box3D: %w", err)
	}
	c := min.Mid(max)
	m := sdf.Translate3d(v3.Vec{X: c.X, Y: c.Y, Z: c.Z})
	return sdf.Transform3D(box, m), nil
}

// Distance returns the signed distance from p to the solid's surface:
// negative inside, zero on the boundary, positive outside.
func (k *SdfxKernel) Distance(s geom.Solid, p geom.Point) (float64, error) {
	field, err := toSDF(s)
	if err != nil {
		return 0, err
	}
	return field.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z}), nil
}

// Inside reports whether p lies inside s or on its boundary within tol.
func (k *SdfxKernel) Inside(s geom.Solid, p geom.Point, tol float64) (bool, error) {
	d, err := k.Distance(s, p)
	if err != nil {
		return false, err
	}
	return d <= tol, nil
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
// Solids without faces produce an empty mesh.
func (k *SdfxKernel) ToMesh(s geom.Solid) (*kernel.Mesh, error) {
	if len(s.Faces()) == 0 {
		return &kernel.Mesh{}, nil
	}
	sdf3, err := toSDF(s)
	if err != nil {
		return nil, err
	}

	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(sdf3, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
