package opening

import "github.com/chazu/voidcut/pkg/geom"

// ElementID is an opaque host element identifier.
type ElementID string

// WallRef identifies a wall element.
type WallRef ElementID

// PlaceholderRef identifies a placeholder family instance.
type PlaceholderRef ElementID

// OpeningHandle identifies an opening created by the host.
type OpeningHandle ElementID

// FaceRef nominates one side face of a wall. Index 0 of the host's interior
// side-face list is the interior face.
type FaceRef struct {
	Wall  WallRef
	Index int
}

// Selector asks the user for a wall.
type Selector interface {
	PickWall(prompt string) (WallRef, error)
}

// Collector finds the placeholder instances whose bodies touch a wall.
type Collector interface {
	IntersectingInstances(wall WallRef) ([]PlaceholderRef, error)
}

// GeometrySource exposes element geometry. Walls yield flat containers;
// placeholders yield a container holding one nested instance.
type GeometrySource interface {
	Geometry(id ElementID) (geom.Container, error)
	InteriorFace(wall WallRef) (FaceRef, error)
	ResolveFace(ref FaceRef) (geom.Face, error)
}

// Modifier edits the host model. Both calls require an open transaction.
type Modifier interface {
	CreateOpening(wall WallRef, min, max geom.Point) (OpeningHandle, error)
	Delete(id ElementID) error
}

// Transaction is a scoped unit of host modifications.
type Transaction interface {
	Commit() error
	Rollback() error
}

// Transactor starts transactions.
type Transactor interface {
	Begin(label string) (Transaction, error)
}

// Host is everything the batch needs from the host application.
type Host interface {
	Selector
	Collector
	GeometrySource
	Modifier
	Transactor
}
