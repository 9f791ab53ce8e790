package model

import (
	"fmt"

	"github.com/chazu/voidcut/pkg/geom"
	"github.com/chazu/voidcut/pkg/kernel/brep"
	"github.com/chazu/voidcut/pkg/kernel/sdfx"
	"github.com/chazu/voidcut/pkg/opening"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Document holds the elements of one building model in insertion order.
type Document struct {
	tol    float64
	kernel *brep.Kernel
	probe  *sdfx.SdfxKernel
	picker Picker
	log    logrus.FieldLogger

	elements map[opening.ElementID]Element
	order    []opening.ElementID
	index    *spatialIndex

	seq     int
	tx      *transaction
	history []string
}

// Option configures a Document.
type Option func(*Document)

// WithTolerance sets the geometric tolerance used by the document kernel
// and opening validation.
func WithTolerance(tol float64) Option {
	return func(d *Document) { d.tol = tol }
}

// WithPicker sets how PickWall chooses a wall.
func WithPicker(p Picker) Option {
	return func(d *Document) { d.picker = p }
}

// WithLogger sets the document logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(d *Document) { d.log = log }
}

// New returns an empty document.
func New(opts ...Option) *Document {
	d := &Document{
		tol:      brep.DefaultTolerance,
		elements: make(map[opening.ElementID]Element),
		index:    newSpatialIndex(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = logrus.StandardLogger()
	}
	d.kernel = brep.New(d.tol)
	d.probe = sdfx.New(0)
	return d
}

// Kernel returns the solid kernel the document builds element bodies with.
func (d *Document) Kernel() *brep.Kernel { return d.kernel }

// Tolerance returns the document tolerance.
func (d *Document) Tolerance() float64 { return d.tol }

// SetPicker replaces the wall picker.
func (d *Document) SetPicker(p Picker) { d.picker = p }

// History returns the labels of committed transactions, oldest first.
func (d *Document) History() []string {
	return append([]string(nil), d.history...)
}

// ---------------------------------------------------------------------------
// Authoring
// ---------------------------------------------------------------------------

// AddWall adds a straight wall from start to end. The wall must run along
// the X or Y axis and stay level.
func (d *Document) AddWall(name string, start, end geom.Point, height, thickness float64) (*Wall, error) {
	if err := d.checkName(name); err != nil {
		return nil, err
	}
	w, err := newWall(d.kernel, name, start, end, height, thickness)
	if err != nil {
		return nil, err
	}
	w.id = newID()
	d.add(w)
	d.log.WithFields(logrus.Fields{"wall": name, "id": w.id}).Debug("added wall")
	return w, nil
}

// AddPlaceholder adds a box placeholder spanning min to max.
func (d *Document) AddPlaceholder(name string, min, max geom.Point, opts ...PlaceholderOption) (*Placeholder, error) {
	if err := d.checkName(name); err != nil {
		return nil, err
	}
	p, err := newPlaceholder(d.kernel, name, min, max, opts...)
	if err != nil {
		return nil, err
	}
	p.id = newID()
	d.add(p)
	d.log.WithFields(logrus.Fields{"placeholder": name, "id": p.id}).Debug("added placeholder")
	return p, nil
}

func (d *Document) checkName(name string) error {
	if name == "" {
		return fmt.Errorf("model: element name is empty")
	}
	for _, id := range d.order {
		e := d.elements[id]
		if e.Kind() != KindOpening && e.Label() == name {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}
	return nil
}

func (d *Document) add(e Element) {
	d.elements[e.ID()] = e
	d.order = append(d.order, e.ID())
	d.seq++
	if p, ok := e.(*Placeholder); ok {
		d.index.insert(p.id, d.seq, p.Min, p.Max)
	}
}

func newID() opening.ElementID {
	return opening.ElementID(uuid.NewString())
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Elements returns every element in insertion order.
func (d *Document) Elements() []Element {
	return lo.Map(d.order, func(id opening.ElementID, _ int) Element {
		return d.elements[id]
	})
}

// Walls returns the walls in insertion order.
func (d *Document) Walls() []*Wall {
	return lo.FilterMap(d.order, func(id opening.ElementID, _ int) (*Wall, bool) {
		w, ok := d.elements[id].(*Wall)
		return w, ok
	})
}

// Placeholders returns the placeholders in insertion order.
func (d *Document) Placeholders() []*Placeholder {
	return lo.FilterMap(d.order, func(id opening.ElementID, _ int) (*Placeholder, bool) {
		p, ok := d.elements[id].(*Placeholder)
		return p, ok
	})
}

// Openings returns the openings in insertion order.
func (d *Document) Openings() []*Opening {
	return lo.FilterMap(d.order, func(id opening.ElementID, _ int) (*Opening, bool) {
		o, ok := d.elements[id].(*Opening)
		return o, ok
	})
}

// OpeningsIn returns the openings cut into wall.
func (d *Document) OpeningsIn(wall opening.WallRef) []*Opening {
	return lo.Filter(d.Openings(), func(o *Opening, _ int) bool {
		return o.Wall == wall
	})
}

// Element returns the element with the given id.
func (d *Document) Element(id opening.ElementID) (Element, error) {
	e, ok := d.elements[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, nil
}

// WallByName returns the wall with the given name.
func (d *Document) WallByName(name string) (*Wall, error) {
	w, ok := lo.Find(d.Walls(), func(w *Wall) bool { return w.Name == name })
	if !ok {
		return nil, fmt.Errorf("%w: wall %q", ErrNotFound, name)
	}
	return w, nil
}

// PlaceholderByName returns the placeholder with the given name.
func (d *Document) PlaceholderByName(name string) (*Placeholder, error) {
	p, ok := lo.Find(d.Placeholders(), func(p *Placeholder) bool { return p.Name == name })
	if !ok {
		return nil, fmt.Errorf("%w: placeholder %q", ErrNotFound, name)
	}
	return p, nil
}

func (d *Document) wall(ref opening.WallRef) (*Wall, error) {
	e, err := d.Element(opening.ElementID(ref))
	if err != nil {
		return nil, err
	}
	w, ok := e.(*Wall)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s, not a wall", ErrNotFound, ref, e.Kind())
	}
	return w, nil
}
