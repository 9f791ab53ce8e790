// Package kernel defines the abstract geometry kernel interfaces. The
// opening tool asks a kernel for boolean intersections of host solids and
// for render meshes; implementations (brep, sdfx) sit behind these
// interfaces so the rest of the system never sees their representation.
package kernel

import "github.com/chazu/voidcut/pkg/geom"

// Intersector performs the boolean intersection of two solids. A result
// with no faces means the solids do not share any volume.
type Intersector interface {
	Intersection(a, b geom.Solid) (geom.Solid, error)
}

// Mesher converts a solid to a triangle mesh for display or export.
type Mesher interface {
	ToMesh(s geom.Solid) (*Mesh, error)
}

// Kernel is a complete geometry kernel: primitives, booleans and meshing.
type Kernel interface {
	// Box creates an axis-aligned box spanning min to max.
	Box(min, max geom.Point) (geom.Solid, error)

	Intersector
	Mesher
}
