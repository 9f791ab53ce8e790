package opening

import (
	"github.com/chazu/voidcut/pkg/geom"
	"github.com/samber/lo"
)

// OuterFace returns the first face of the intersection solid that does not
// intersect the wall's interior face. For a block piercing a planar wall this
// is the face flush with the exterior side; the interior face and the four
// side strips all touch the interior face.
func OuterFace(intersection geom.Solid, wallFace geom.Face) (geom.Face, error) {
	f, ok := lo.Find(intersection.Faces(), func(f geom.Face) bool {
		return wallFace.Intersect(f) == geom.NonIntersecting
	})
	if !ok {
		return nil, ErrNoOuterFace
	}
	return f, nil
}
