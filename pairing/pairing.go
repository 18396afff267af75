package pairing

import (
	"fmt"

	"github.com/katalvlaran/entwine/arena"
)

// portal is the arena entry behind every Portal handle.
type portal struct {
	tag     string
	partner Portal // NoPortal while unpaired
}

// Store holds one population of pairable entities. Not safe for concurrent
// use: Pair and Unpair are read-then-write sequences with no internal locking.
type Store struct {
	tab *arena.Table[portal]
}

// New returns an empty Store.
// Complexity: O(1).
func New() *Store {
	return &Store{tab: arena.NewTable[portal]()}
}

// NewPortal creates an unpaired entity tagged tag for diagnostics.
// The tag may be empty.
// Complexity: O(1).
func (s *Store) NewPortal(tag string) Portal {
	return Portal(s.tab.Insert(portal{tag: tag}))
}

// Pair links a and b to each other, both sides in the same logical operation.
//
// Preconditions, all checked before the first write (the store is untouched
// on failure): a and b are live and distinct (ErrSelfPair), and neither has a
// partner (ErrAlreadyPaired) — re-pairing with the current partner counts as
// an occupied side.
// Complexity: O(1).
func (s *Store) Pair(a, b Portal) error {
	// 1. Resolve both sides.
	pa, err := s.get(a)
	if err != nil {
		return fmt.Errorf("pairing: pair first side: %w", err)
	}
	pb, err := s.get(b)
	if err != nil {
		return fmt.Errorf("pairing: pair second side: %w", err)
	}

	// 2. Structural checks.
	if a == b {
		return ErrSelfPair
	}
	if !pa.partner.IsNone() || !pb.partner.IsNone() {
		return ErrAlreadyPaired
	}

	// 3. Set both sides together.
	pa.partner = b
	pb.partner = a

	return nil
}

// Unpair clears a's pairing, both sides in the same logical operation.
// Fails with ErrNotPaired when a has no partner; retrying after success fails
// identically.
// Complexity: O(1).
func (s *Store) Unpair(a Portal) error {
	// 1. Resolve and require a partner.
	pa, err := s.get(a)
	if err != nil {
		return fmt.Errorf("pairing: unpair: %w", err)
	}
	if pa.partner.IsNone() {
		return ErrNotPaired
	}

	// 2. Resolve the partner; by the symmetry invariant it must be live and
	//    point back.
	pb, err := s.get(pa.partner)
	if err != nil {
		return fmt.Errorf("%w: partner of %v is dead: %v", ErrInconsistent, a, err)
	}
	if pb.partner != a {
		return fmt.Errorf("%w: partner of %v does not point back", ErrInconsistent, a)
	}

	// 3. Clear both sides together.
	pb.partner = NoPortal
	pa.partner = NoPortal

	return nil
}

// Partner reports a's current partner, or NoPortal while unpaired.
// Read-only, no side effects.
// Complexity: O(1).
func (s *Store) Partner(a Portal) (Portal, error) {
	pa, err := s.get(a)
	if err != nil {
		return NoPortal, fmt.Errorf("pairing: partner: %w", err)
	}

	return pa.partner, nil
}

// Tag reports the diagnostic tag of a.
// Complexity: O(1).
func (s *Store) Tag(a Portal) (string, error) {
	pa, err := s.get(a)
	if err != nil {
		return "", fmt.Errorf("pairing: tag: %w", err)
	}

	return pa.tag, nil
}

// Release reclaims an entity that is not paired. Fails with ErrStillPaired
// otherwise; the store never unpairs implicitly.
// Complexity: O(1).
func (s *Store) Release(a Portal) error {
	pa, err := s.get(a)
	if err != nil {
		return fmt.Errorf("pairing: release: %w", err)
	}
	if !pa.partner.IsNone() {
		return ErrStillPaired
	}

	return s.tab.Remove(arena.Handle(a))
}

// Len reports the number of live entities.
// Complexity: O(1).
func (s *Store) Len() int { return s.tab.Len() }

// Contains reports whether a designates a live entity of this store.
// Complexity: O(1).
func (s *Store) Contains(a Portal) bool { return s.tab.Contains(arena.Handle(a)) }

// Check audits the symmetry invariant across the whole store: every partner
// reference designates a live entity that points back. A nil result certifies
// the registry; violations are wrapped in ErrInconsistent.
// Complexity: O(n).
func (s *Store) Check() error {
	for _, h := range s.tab.Handles() {
		p := Portal(h)
		rec, err := s.get(p)
		if err != nil {
			return fmt.Errorf("%w: live handle %v failed to resolve: %v", ErrInconsistent, p, err)
		}
		if rec.partner.IsNone() {
			continue
		}
		if rec.partner == p {
			return fmt.Errorf("%w: %v is paired with itself", ErrInconsistent, p)
		}
		back, err := s.get(rec.partner)
		if err != nil {
			return fmt.Errorf("%w: partner of %v is dead", ErrInconsistent, p)
		}
		if back.partner != p {
			return fmt.Errorf("%w: partner of %v does not point back", ErrInconsistent, p)
		}
	}

	return nil
}

// get resolves a to its arena entry; internal use only.
func (s *Store) get(a Portal) (*portal, error) {
	return s.tab.Get(arena.Handle(a))
}
