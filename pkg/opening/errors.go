package opening

import (
	"errors"
	"fmt"
)

var (
	// ErrUserCancelled is returned when the user aborts the wall prompt.
	ErrUserCancelled = errors.New("user cancelled")

	// ErrNoSolid is returned when an element yields no usable solid.
	ErrNoSolid = errors.New("no usable solid")

	// ErrEmptyIntersection is returned when the placeholder does not share
	// any volume with the wall.
	ErrEmptyIntersection = errors.New("placeholder does not intersect wall")

	// ErrNoOuterFace is returned when no face of the intersection lies
	// clear of the wall's interior face.
	ErrNoOuterFace = errors.New("no outer face on intersection")
)

// HostError wraps a failure reported by the host model.
type HostError struct {
	Op  string
	Err error
}

func (e *HostError) Error() string {
	return fmt.Sprintf("host %s: %v", e.Op, e.Err)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

func hostErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &HostError{Op: op, Err: err}
}

// PlaceholderError is a failure caused by one placeholder's geometry.
type PlaceholderError struct {
	Placeholder PlaceholderRef
	Err         error
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("placeholder %s: %v", e.Placeholder, e.Err)
}

func (e *PlaceholderError) Unwrap() error {
	return e.Err
}

// Skippable reports whether err only concerns a single placeholder, which
// the batch then leaves in place and moves past.
func Skippable(err error) bool {
	var pe *PlaceholderError
	if !errors.As(err, &pe) {
		return false
	}
	return errors.Is(pe.Err, ErrNoSolid) ||
		errors.Is(pe.Err, ErrEmptyIntersection) ||
		errors.Is(pe.Err, ErrNoOuterFace)
}
