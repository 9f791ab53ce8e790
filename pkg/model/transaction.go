package model

import (
	"fmt"

	"github.com/chazu/voidcut/pkg/opening"
)

// Compile-time interface check.
var _ opening.Transaction = (*transaction)(nil)

// transaction records the element set at Begin so Rollback can restore it.
// Elements are never mutated after insertion, so copying the map and order
// is a full snapshot.
type transaction struct {
	doc      *Document
	label    string
	elements map[opening.ElementID]Element
	order    []opening.ElementID
	done     bool
}

// Begin opens a transaction. Only one transaction may be open at a time.
func (d *Document) Begin(label string) (opening.Transaction, error) {
	if d.tx != nil {
		return nil, fmt.Errorf("begin %q while %q is open: %w", label, d.tx.label, ErrTransactionOpen)
	}
	elements := make(map[opening.ElementID]Element, len(d.elements))
	for id, e := range d.elements {
		elements[id] = e
	}
	d.tx = &transaction{
		doc:      d,
		label:    label,
		elements: elements,
		order:    append([]opening.ElementID(nil), d.order...),
	}
	d.log.WithField("transaction", label).Debug("transaction started")
	return d.tx, nil
}

// InTransaction reports whether a transaction is open.
func (d *Document) InTransaction() bool { return d.tx != nil }

func (t *transaction) Commit() error {
	if t.done {
		return fmt.Errorf("commit %q: %w", t.label, ErrTransactionClosed)
	}
	t.done = true
	t.doc.tx = nil
	t.doc.history = append(t.doc.history, t.label)
	t.doc.log.WithField("transaction", t.label).Debug("transaction committed")
	return nil
}

func (t *transaction) Rollback() error {
	if t.done {
		return fmt.Errorf("rollback %q: %w", t.label, ErrTransactionClosed)
	}
	t.done = true
	d := t.doc
	d.tx = nil
	d.elements = t.elements
	d.order = t.order

	d.index = newSpatialIndex()
	for i, id := range d.order {
		if p, ok := d.elements[id].(*Placeholder); ok {
			d.index.insert(id, i+1, p.Min, p.Max)
		}
	}
	d.log.WithField("transaction", t.label).Debug("transaction rolled back")
	return nil
}
