// Package repository is the persistence boundary: one interface per
// collection (users, doctors, appointments) with GORM-backed
// implementations. Services depend on the interfaces only.
package repository

import "errors"

var (
	// ErrNotFound is returned when an equality lookup matches nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate record")
	// ErrSlotTaken is returned when an appointment insert loses to an
	// existing booking for the same (doctor, timestamp).
	ErrSlotTaken = errors.New("slot already taken")
)
