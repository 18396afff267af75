// Package arena defines Handle, the generic Table, and the error taxonomy
// roots shared by every store in the module.
package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the taxonomy root for malformed or absent input:
	// nil payloads, empty tags, out-of-range indices, dead handles.
	// Detected before any state change.
	ErrInvalidArgument = errors.New("arena: invalid argument")

	// ErrIllegalState is the taxonomy root for violated relationship
	// preconditions: already attached, not currently paired, would create a
	// cycle, duplicate key. Detected before any state change.
	ErrIllegalState = errors.New("arena: illegal state")

	// ErrNoneHandle indicates the zero Handle was supplied where a live entry
	// is required.
	ErrNoneHandle = fmt.Errorf("none handle where an entry is required: %w", ErrInvalidArgument)

	// ErrNoSuchEntity indicates the handle does not designate a live entry in
	// this table: the entry was removed, the slot was recycled, or the index
	// is out of range. Handles are only meaningful against the table that
	// issued them.
	ErrNoSuchEntity = fmt.Errorf("handle does not designate a live entry: %w", ErrInvalidArgument)
)

// Handle is a stable reference to an entry in a Table.
//
// Handles are small comparable values: copy them, store them in maps and
// slices, embed them in other entries. The zero Handle is None and never
// designates an entry. A Handle stays valid until the entry it designates is
// removed; afterwards every use reports ErrNoSuchEntity.
type Handle struct {
	index uint32 // slot position within the table
	gen   uint32 // generation stamp; 0 is reserved for None
}

// None is the zero Handle: "no entry". Owner references, partner references
// and lookup results use None to express absence.
var None Handle

// IsNone reports whether h is the zero Handle.
func (h Handle) IsNone() bool { return h.gen == 0 }

// String renders the handle for diagnostics, e.g. "#3@2" or "none".
func (h Handle) String() string {
	if h.IsNone() {
		return "none"
	}

	return fmt.Sprintf("#%d@%d", h.index, h.gen)
}
