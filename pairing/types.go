// Package pairing defines the Portal handle and the sentinel errors of the
// symmetric association store.
package pairing

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/entwine/arena"
)

var (
	// ErrSelfPair rejects pairing an entity with itself.
	ErrSelfPair = fmt.Errorf("pairing: entity cannot pair with itself: %w", arena.ErrInvalidArgument)

	// ErrAlreadyPaired indicates one of the two sides already has a partner.
	// This includes re-pairing with the current partner: unpair first.
	ErrAlreadyPaired = fmt.Errorf("pairing: entity already has a partner: %w", arena.ErrIllegalState)

	// ErrNotPaired indicates Unpair on an entity with no partner.
	ErrNotPaired = fmt.Errorf("pairing: entity has no partner: %w", arena.ErrIllegalState)

	// ErrStillPaired indicates Release on an entity that still has a partner.
	ErrStillPaired = fmt.Errorf("pairing: entity still has a partner: %w", arena.ErrIllegalState)

	// ErrInconsistent is reported by Check when the registry violates the
	// symmetry invariant. Unreachable through the public API.
	ErrInconsistent = errors.New("pairing: registry inconsistency detected")
)

// Portal is a handle to an entity owned by a Store. The zero Portal is
// NoPortal. Portals are comparable and usable as map keys.
type Portal arena.Handle

// NoPortal is the zero Portal: "no entity". Partner returns it for unpaired
// entities.
var NoPortal Portal

// IsNone reports whether p is the zero Portal.
func (p Portal) IsNone() bool { return arena.Handle(p).IsNone() }

// String renders the handle for diagnostics.
func (p Portal) String() string { return arena.Handle(p).String() }
