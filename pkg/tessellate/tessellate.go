// Package tessellate produces triangle meshes for the elements of a
// document using a kernel mesher. One mesh is produced per element.
package tessellate

import (
	"fmt"

	"github.com/chazu/voidcut/pkg/kernel"
	"github.com/chazu/voidcut/pkg/model"
	"github.com/samber/lo"
)

// Tessellate meshes every element of doc in insertion order. When kinds is
// non-empty only elements of those kinds are meshed. Elements without a
// body, such as degenerate placeholders, produce no mesh. The document is
// never modified.
func Tessellate(doc *model.Document, m kernel.Mesher, kinds ...model.Kind) ([]*kernel.Mesh, error) {
	if doc == nil {
		return nil, nil
	}

	var meshes []*kernel.Mesh
	for _, e := range doc.Elements() {
		if len(kinds) > 0 && !lo.Contains(kinds, e.Kind()) {
			continue
		}
		mesh, err := meshElement(m, e)
		if err != nil {
			return nil, fmt.Errorf("tessellate: %s %q: %w", e.Kind(), e.Label(), err)
		}
		if mesh != nil {
			meshes = append(meshes, mesh)
		}
	}
	return meshes, nil
}

func meshElement(m kernel.Mesher, e model.Element) (*kernel.Mesh, error) {
	s := e.Solid()
	if s == nil || len(s.Faces()) == 0 {
		return nil, nil
	}
	mesh, err := m.ToMesh(s)
	if err != nil {
		return nil, err
	}
	if mesh.IsEmpty() {
		return nil, nil
	}
	mesh.Element = e.Label()
	mesh.Kind = e.Kind().String()
	return mesh, nil
}
