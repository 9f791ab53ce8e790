package model

import "errors"

var (
	ErrNotFound           = errors.New("model: element not found")
	ErrDuplicateName      = errors.New("model: duplicate element name")
	ErrUnsupportedWall    = errors.New("model: only straight, level, axis-aligned walls are supported")
	ErrInvalidPlaceholder = errors.New("model: placeholder box has no volume")
	ErrNoTransaction      = errors.New("model: modification outside a transaction")
	ErrTransactionOpen    = errors.New("model: a transaction is already open")
	ErrTransactionClosed  = errors.New("model: transaction already finished")
	ErrDegenerateOpening  = errors.New("model: opening rectangle has no area in the wall plane")
	ErrOpeningOutsideWall = errors.New("model: opening does not lie on the wall")
	ErrNoPicker           = errors.New("model: no wall picker configured")
)
