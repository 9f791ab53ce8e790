package opening

import (
	"errors"
	"fmt"

	"github.com/chazu/voidcut/pkg/geom"
	"github.com/chazu/voidcut/pkg/kernel"
	"github.com/sirupsen/logrus"
)

// Opening is one opening produced for a placeholder. Min and Max are the
// diagonal corners handed to the host; Handle is empty for dry runs.
type Opening struct {
	Wall        WallRef
	Placeholder PlaceholderRef
	Min, Max    geom.Point
	Handle      OpeningHandle
}

// Driver computes and inserts the opening for one placeholder at a time.
// It keeps no state between placeholders and reads the wall geometry anew
// for each one.
type Driver struct {
	geometry GeometrySource
	modifier Modifier
	kernel   kernel.Intersector
	log      logrus.FieldLogger
}

// NewDriver returns a driver reading and editing h and intersecting with k.
// A nil logger uses the logrus standard logger.
func NewDriver(h Host, k kernel.Intersector, log logrus.FieldLogger) *Driver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Driver{geometry: h, modifier: h, kernel: k, log: log}
}

// Compute returns the opening corners for placeholder p in wall without
// touching the host model.
func (d *Driver) Compute(wall WallRef, p PlaceholderRef) (min, max geom.Point, err error) {
	log := d.log.WithFields(logrus.Fields{"wall": wall, "placeholder": p})

	wallGeom, err := d.geometry.Geometry(ElementID(wall))
	if err != nil {
		return min, max, hostErr("geometryOf", err)
	}
	wallSolid, err := WallSolid(wallGeom)
	if err != nil {
		return min, max, fmt.Errorf("wall %s: %w", wall, err)
	}

	ref, err := d.geometry.InteriorFace(wall)
	if err != nil {
		return min, max, hostErr("interiorFaceRef", err)
	}
	wallFace, err := d.geometry.ResolveFace(ref)
	if err != nil {
		return min, max, hostErr("resolveFace", err)
	}

	phGeom, err := d.geometry.Geometry(ElementID(p))
	if err != nil {
		return min, max, hostErr("geometryOf", err)
	}
	phSolid, err := PlaceholderSolid(phGeom)
	if err != nil {
		return min, max, &PlaceholderError{Placeholder: p, Err: err}
	}

	inter, err := Intersect(d.kernel, phSolid, wallSolid)
	if errors.Is(err, ErrEmptyIntersection) {
		return min, max, &PlaceholderError{Placeholder: p, Err: err}
	}
	if err != nil {
		return min, max, err
	}
	log.WithField("faces", len(inter.Faces())).Debug("intersected placeholder with wall")

	outer, err := OuterFace(inter, wallFace)
	if err != nil {
		return min, max, &PlaceholderError{Placeholder: p, Err: err}
	}
	loops := outer.EdgeLoops()
	if len(loops) == 0 {
		return min, max, &PlaceholderError{
			Placeholder: p,
			Err:         fmt.Errorf("outer face has no edge loops: %w", ErrNoOuterFace),
		}
	}

	points := geom.SampleLoop(loops[0])
	if min, err = geom.MinPoint(points); err != nil {
		return min, max, fmt.Errorf("outer loop: %w", err)
	}
	if max, err = geom.MaxPoint(points); err != nil {
		return min, max, fmt.Errorf("outer loop: %w", err)
	}

	log.WithFields(logrus.Fields{"min": min, "max": max}).Debug("computed opening corners")
	return min, max, nil
}

// Insert computes the opening for p, creates it on the wall and deletes the
// placeholder. It must run inside a host transaction.
func (d *Driver) Insert(wall WallRef, p PlaceholderRef) (Opening, error) {
	min, max, err := d.Compute(wall, p)
	if err != nil {
		return Opening{}, err
	}

	handle, err := d.modifier.CreateOpening(wall, min, max)
	if err != nil {
		return Opening{}, hostErr("createOpening", err)
	}
	if err := d.modifier.Delete(ElementID(p)); err != nil {
		return Opening{}, hostErr("delete", err)
	}

	d.log.WithFields(logrus.Fields{
		"wall":        wall,
		"placeholder": p,
		"opening":     handle,
	}).Info("inserted wall opening")

	return Opening{Wall: wall, Placeholder: p, Min: min, Max: max, Handle: handle}, nil
}
