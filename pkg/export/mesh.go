package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chazu/voidcut/pkg/kernel"
)

// WriteMeshes encodes meshes as an indented JSON array.
func WriteMeshes(w io.Writer, meshes []*kernel.Mesh) error {
	if meshes == nil {
		meshes = []*kernel.Mesh{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meshes); err != nil {
		return fmt.Errorf("encode meshes: %w", err)
	}
	return nil
}
