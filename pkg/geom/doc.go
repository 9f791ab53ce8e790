// Package geom defines the geometric values the opening kernel works on:
// points, curves, edge loops, faces, solids and host geometry containers.
// Faces and solids are interfaces so that any geometry kernel can back them.
package geom
