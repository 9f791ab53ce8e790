package model

import (
	"fmt"
	"math"

	"github.com/chazu/voidcut/pkg/geom"
	"github.com/chazu/voidcut/pkg/opening"
	"github.com/sirupsen/logrus"
)

// Compile-time interface check.
var _ opening.Host = (*Document)(nil)

// PickWall asks the configured picker for a wall.
func (d *Document) PickWall(prompt string) (opening.WallRef, error) {
	if d.picker == nil {
		return "", ErrNoPicker
	}
	w, err := d.picker.Pick(prompt, d.Walls())
	if err != nil {
		return "", err
	}
	return w.Ref(), nil
}

// IntersectingInstances returns the placeholders whose bounding boxes
// overlap the wall body, in insertion order.
func (d *Document) IntersectingInstances(ref opening.WallRef) ([]opening.PlaceholderRef, error) {
	w, err := d.wall(ref)
	if err != nil {
		return nil, err
	}
	min, max := w.body.BoundingBox()
	ids, err := d.index.search(min, max)
	if err != nil {
		return nil, fmt.Errorf("search around wall %q: %w", w.Name, err)
	}
	refs := make([]opening.PlaceholderRef, len(ids))
	for i, id := range ids {
		refs[i] = opening.PlaceholderRef(id)
	}
	return refs, nil
}

// Geometry returns an element's geometry container. Walls and openings
// yield their body; placeholders yield one nested instance.
func (d *Document) Geometry(id opening.ElementID) (geom.Container, error) {
	e, err := d.Element(id)
	if err != nil {
		return nil, err
	}
	switch e := e.(type) {
	case *Placeholder:
		return e.parts, nil
	default:
		return geom.Container{e.Solid()}, nil
	}
}

// InteriorFace nominates the first interior side face of the wall.
func (d *Document) InteriorFace(ref opening.WallRef) (opening.FaceRef, error) {
	if _, err := d.wall(ref); err != nil {
		return opening.FaceRef{}, err
	}
	return opening.FaceRef{Wall: ref, Index: 0}, nil
}

// ResolveFace returns the face a FaceRef points at. Unjoined walls have one
// interior face.
func (d *Document) ResolveFace(ref opening.FaceRef) (geom.Face, error) {
	w, err := d.wall(ref.Wall)
	if err != nil {
		return nil, err
	}
	faces := []geom.Face{w.interiorFace()}
	if ref.Index < 0 || ref.Index >= len(faces) {
		return nil, fmt.Errorf("%w: wall %q has no interior face %d", ErrNotFound, w.Name, ref.Index)
	}
	return faces[ref.Index], nil
}

// ExteriorFace returns the side face the wall orientation points out of.
func (d *Document) ExteriorFace(ref opening.WallRef) (geom.Face, error) {
	w, err := d.wall(ref)
	if err != nil {
		return nil, err
	}
	return w.exteriorFace(), nil
}

// CreateOpening cuts a rectangular opening through the wall. min and max
// are diagonal corners; their in-plane rectangle must have area and its
// center must lie on the wall body. The cut always spans the full wall
// thickness.
func (d *Document) CreateOpening(ref opening.WallRef, min, max geom.Point) (opening.OpeningHandle, error) {
	if d.tx == nil {
		return "", ErrNoTransaction
	}
	w, err := d.wall(ref)
	if err != nil {
		return "", err
	}
	if !min.LessEqual(max) {
		return "", fmt.Errorf("corners %v and %v are not ordered: %w", min, max, ErrDegenerateOpening)
	}
	if max.Coord(w.along)-min.Coord(w.along) <= d.tol || max.Z-min.Z <= d.tol {
		return "", fmt.Errorf("corners %v and %v: %w", min, max, ErrDegenerateOpening)
	}
	inside, err := d.probe.Inside(w.body, min.Mid(max), d.tol)
	if err != nil {
		return "", fmt.Errorf("probe wall %q: %w", w.Name, err)
	}
	if !inside {
		return "", fmt.Errorf("corners %v and %v on wall %q: %w", min, max, w.Name, ErrOpeningOutsideWall)
	}

	wmin, wmax := w.body.BoundingBox()
	lo, hi := wmin, wmax
	for _, axis := range []int{w.along, 2} {
		lo = lo.WithCoord(axis, math.Max(min.Coord(axis), wmin.Coord(axis)))
		hi = hi.WithCoord(axis, math.Min(max.Coord(axis), wmax.Coord(axis)))
	}
	cut, err := d.kernel.Box(lo, hi)
	if err != nil {
		return "", fmt.Errorf("opening in wall %q: %v: %w", w.Name, err, ErrOpeningOutsideWall)
	}

	o := &Opening{
		id:   newID(),
		Name: fmt.Sprintf("%s opening %d", w.Name, len(d.OpeningsIn(ref))+1),
		Wall: ref,
		Min:  min,
		Max:  max,
		cut:  cut,
	}
	d.add(o)
	d.log.WithFields(logrus.Fields{"wall": w.Name, "opening": o.Name, "min": min, "max": max}).Debug("created opening")
	return o.Handle(), nil
}

// Delete removes an element. Deleting a wall removes its openings too.
func (d *Document) Delete(id opening.ElementID) error {
	if d.tx == nil {
		return ErrNoTransaction
	}
	e, err := d.Element(id)
	if err != nil {
		return err
	}
	doomed := map[opening.ElementID]bool{id: true}
	if w, ok := e.(*Wall); ok {
		for _, o := range d.OpeningsIn(w.Ref()) {
			doomed[o.id] = true
		}
	}

	order := d.order[:0:0]
	for _, eid := range d.order {
		if doomed[eid] {
			delete(d.elements, eid)
			d.index.remove(eid)
			continue
		}
		order = append(order, eid)
	}
	d.order = order
	d.log.WithFields(logrus.Fields{"element": e.Label(), "kind": e.Kind()}).Debug("deleted element")
	return nil
}
