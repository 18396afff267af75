package tree

import "fmt"

// Attach inserts child at position at within the Sequence owner and sets the
// child's back reference, as one logical step.
//
// Preconditions, all checked before any mutation (the store is untouched on
// failure):
//   - owner is a Sequence composite (ErrNotComposite / ErrNotSequence)
//   - at ∈ [0, Arity(owner)] (ErrIndexRange)
//   - child is currently detached (ErrAlreadyAttached)
//   - child is not owner and not an ancestor of owner (ErrAncestryCycle)
//
// Complexity: O(arity + depth) — list insertion plus the ancestor walk.
func (s *Store) Attach(owner, child Node, at int) error {
	// 1. Resolve both handles before touching anything.
	ow, err := s.get(owner)
	if err != nil {
		return fmt.Errorf("tree: attach owner: %w", err)
	}
	ch, err := s.get(child)
	if err != nil {
		return fmt.Errorf("tree: attach child: %w", err)
	}

	// 2. Owner must be an ordered composite.
	switch ow.kind {
	case Sequence:
	case Leaf:
		return ErrNotComposite
	default:
		return ErrNotSequence
	}

	// 3. Index within the closed insertion range.
	if at < 0 || at > len(ow.seq) {
		return ErrIndexRange
	}

	// 4. Child must be free.
	if !ch.owner.IsNone() {
		return ErrAlreadyAttached
	}

	// 5. Cycle guard: reject before mutating (see guardCycle).
	if err = s.guardCycle(owner, child); err != nil {
		return err
	}

	// 6. Mutate both sides together.
	ow.seq = append(ow.seq, NoNode)
	copy(ow.seq[at+1:], ow.seq[at:])
	ow.seq[at] = child
	ch.owner = owner

	return nil
}

// Append inserts child at the end of the Sequence owner.
// Equivalent to Attach(owner, child, Arity(owner)).
func (s *Store) Append(owner, child Node) error {
	ow, err := s.get(owner)
	if err != nil {
		return fmt.Errorf("tree: append owner: %w", err)
	}

	return s.Attach(owner, child, len(ow.seq))
}

// AttachKeyed registers child under key within the Mapping owner and sets the
// child's back reference, as one logical step. Key insertion order is
// preserved and drives Children/Keys iteration.
//
// Preconditions, all checked before any mutation:
//   - owner is a Mapping composite (ErrNotComposite / ErrNotMapping)
//   - key is non-empty (ErrEmptyKey) and not already present (ErrDuplicateKey)
//   - child is currently detached (ErrAlreadyAttached)
//   - child is not owner and not an ancestor of owner (ErrAncestryCycle)
//
// Complexity: O(depth) for the ancestor walk; the map insertion is O(1).
func (s *Store) AttachKeyed(owner, child Node, key string) error {
	// 1. Resolve both handles before touching anything.
	ow, err := s.get(owner)
	if err != nil {
		return fmt.Errorf("tree: attach owner: %w", err)
	}
	ch, err := s.get(child)
	if err != nil {
		return fmt.Errorf("tree: attach child: %w", err)
	}

	// 2. Owner must be a keyed composite.
	switch ow.kind {
	case Mapping:
	case Leaf:
		return ErrNotComposite
	default:
		return ErrNotMapping
	}

	// 3. Key must be well-formed and fresh.
	if key == "" {
		return ErrEmptyKey
	}
	if _, dup := ow.keyed[key]; dup {
		return ErrDuplicateKey
	}

	// 4. Child must be free.
	if !ch.owner.IsNone() {
		return ErrAlreadyAttached
	}

	// 5. Cycle guard: reject before mutating.
	if err = s.guardCycle(owner, child); err != nil {
		return err
	}

	// 6. Mutate both sides together.
	ow.keyed[key] = child
	ow.order = append(ow.order, key)
	ch.owner = owner
	ch.key = key

	return nil
}

// Detach removes child from its owner's collection and clears the back
// reference, as one logical step. Detaching an already-detached node is not a
// no-op: it fails with ErrNotAttached.
// Complexity: O(arity of the owner).
func (s *Store) Detach(child Node) error {
	// 1. Resolve the child and require an owner.
	ch, err := s.get(child)
	if err != nil {
		return fmt.Errorf("tree: detach: %w", err)
	}
	if ch.owner.IsNone() {
		return ErrNotAttached
	}

	// 2. Resolve the owner; by the symmetry invariant it must be live.
	ow, err := s.get(ch.owner)
	if err != nil {
		return fmt.Errorf("%w: owner of %v is dead: %v", ErrInconsistent, child, err)
	}

	// 3. Remove the forward reference from the owner's collection.
	switch ow.kind {
	case Sequence:
		at := -1
		for i, c := range ow.seq {
			if c == child {
				at = i
				break
			}
		}
		if at < 0 {
			return fmt.Errorf("%w: %v missing from its owner's children", ErrInconsistent, child)
		}
		ow.seq = append(ow.seq[:at], ow.seq[at+1:]...)
	case Mapping:
		if ow.keyed[ch.key] != child {
			return fmt.Errorf("%w: %v missing from its owner's children", ErrInconsistent, child)
		}
		delete(ow.keyed, ch.key)
		for i, k := range ow.order {
			if k == ch.key {
				ow.order = append(ow.order[:i], ow.order[i+1:]...)
				break
			}
		}
	default:
		return fmt.Errorf("%w: owner of %v is a leaf", ErrInconsistent, child)
	}

	// 4. Clear the back reference.
	ch.owner = NoNode
	ch.key = ""

	return nil
}

// guardCycle rejects attaching child under owner when that would make child
// its own ancestor: it walks owner's ancestor chain (owner included) and
// fails with ErrAncestryCycle if child appears. The walk terminates because
// acyclicity already holds for the current state.
func (s *Store) guardCycle(owner, child Node) error {
	for cur := owner; !cur.IsNone(); {
		if cur == child {
			return ErrAncestryCycle
		}
		nd, err := s.get(cur)
		if err != nil {
			return fmt.Errorf("%w: ancestor chain of %v broke at %v: %v", ErrInconsistent, owner, cur, err)
		}
		cur = nd.owner
	}

	return nil
}
