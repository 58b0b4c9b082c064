// Package entity is the minimal entity-component store the card walker and
// route tree are built against. spec.md §6 treats this store as an
// external collaborator accessed through four primitives — ChildrenOf,
// ParentOf, a typed component accessor, and a marker query — and this
// package provides that interface plus two concrete backends.
package entity

import "github.com/google/uuid"

// ID identifies an entity. IDs are opaque outside this package; callers
// must not assume any ordering or numeric structure.
type ID string

// NewID generates a fresh, globally unique entity ID.
func NewID() ID {
	return ID(uuid.New().String())
}

// Nil is the zero value of ID, never assigned by NewID.
const Nil ID = ""
