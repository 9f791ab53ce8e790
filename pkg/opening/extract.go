package opening

import (
	"fmt"

	"github.com/chazu/voidcut/pkg/geom"
	"github.com/samber/lo"
)

// WallSolid returns the first solid of a flat wall geometry container.
func WallSolid(c geom.Container) (geom.Solid, error) {
	solids := c.Solids()
	if len(solids) == 0 {
		return nil, fmt.Errorf("wall geometry: %w", ErrNoSolid)
	}
	return solids[0], nil
}

// PlaceholderSolid returns the solid of a placed family instance. The
// container's first object must be the nested instance geometry. All of it
// is scanned and the last solid with positive surface area wins, so leading
// symbolic or zero-area solids are passed over whatever their order.
func PlaceholderSolid(c geom.Container) (geom.Solid, error) {
	if len(c) == 0 {
		return nil, fmt.Errorf("placeholder geometry is empty: %w", ErrNoSolid)
	}
	inst, ok := c[0].(*geom.Instance)
	if !ok || inst == nil {
		return nil, fmt.Errorf("placeholder geometry starts with %T, not an instance: %w", c[0], ErrNoSolid)
	}

	found, _, ok := lo.FindLastIndexOf(inst.Geometry.Solids(), func(s geom.Solid) bool {
		return s.SurfaceArea() > 0
	})
	if !ok {
		return nil, fmt.Errorf("instance %q has no solid with positive area: %w", inst.Name, ErrNoSolid)
	}
	return found, nil
}
