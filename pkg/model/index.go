package model

import (
	"sort"

	"github.com/chazu/voidcut/pkg/geom"
	"github.com/chazu/voidcut/pkg/opening"
	"github.com/dhconnelly/rtreego"
)

// indexEntry is a placeholder's bounding box in the R-tree. seq orders
// search results the way the elements were inserted.
type indexEntry struct {
	id   opening.ElementID
	seq  int
	rect rtreego.Rect
}

func (e *indexEntry) Bounds() rtreego.Rect { return e.rect }

// spatialIndex is a 3D R-tree over placeholder bounding boxes.
type spatialIndex struct {
	tree    *rtreego.Rtree
	entries map[opening.ElementID]*indexEntry
}

func newSpatialIndex() *spatialIndex {
	return &spatialIndex{
		tree:    rtreego.NewTree(3, 2, 8),
		entries: make(map[opening.ElementID]*indexEntry),
	}
}

// boxRect converts a box to an R-tree rectangle. Every extent must be
// positive.
func boxRect(min, max geom.Point) (rtreego.Rect, error) {
	size := max.Sub(min)
	return rtreego.NewRect(rtreego.Point{min.X, min.Y, min.Z}, []float64{size.X, size.Y, size.Z})
}

// insert adds a box. Boxes without volume cannot be indexed and are
// ignored; they can never intersect a wall.
func (ix *spatialIndex) insert(id opening.ElementID, seq int, min, max geom.Point) {
	rect, err := boxRect(min, max)
	if err != nil {
		return
	}
	e := &indexEntry{id: id, seq: seq, rect: rect}
	ix.entries[id] = e
	ix.tree.Insert(e)
}

func (ix *spatialIndex) remove(id opening.ElementID) {
	if e, ok := ix.entries[id]; ok {
		ix.tree.Delete(e)
		delete(ix.entries, id)
	}
}

// search returns the ids of boxes whose interiors overlap min..max, in
// insertion order. Boxes that only touch are not returned.
func (ix *spatialIndex) search(min, max geom.Point) ([]opening.ElementID, error) {
	rect, err := boxRect(min, max)
	if err != nil {
		return nil, err
	}
	hits := ix.tree.SearchIntersect(rect)
	entries := make([]*indexEntry, 0, len(hits))
	for _, h := range hits {
		entries = append(entries, h.(*indexEntry))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	ids := make([]opening.ElementID, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return ids, nil
}
