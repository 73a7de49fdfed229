package sortable

import (
	"bytes"

	"github.com/google/uuid"
)

// UUID is a sortable wrapper type for github.com/google/uuid UUIDs,
// ordered lexicographically by their 16 raw bytes. For time-ordered UUID
// versions (v6, v7) the byte order matches creation order.
type UUID uuid.UUID

// Compile-time check that UUID implements Sortable[UUID].
var _ Sortable[UUID] = (*UUID)(nil)

// NewUUID returns a sortable wrapper around a freshly generated random (v4) UUID.
func NewUUID() UUID {
	return UUID(uuid.New())
}

// Equals returns true if both UUIDs contain the same 16 bytes.
func (u UUID) Equals(other UUID) bool {
	return uuid.UUID(u) == uuid.UUID(other)
}

// LessThan returns true if this UUID sorts before the other byte-wise.
func (u UUID) LessThan(other UUID) bool {
	a := uuid.UUID(u)
	b := uuid.UUID(other)

	return bytes.Compare(a[:], b[:]) < 0
}

// String returns the canonical xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form.
func (u UUID) String() string {
	return uuid.UUID(u).String()
}
