package tree

import "fmt"

// Check audits the whole store against its invariants and reports the first
// violation found, wrapped in ErrInconsistent. A nil result certifies:
//
//  1. Symmetry   — every child's owner reference matches the composite that
//     lists it, in both directions.
//  2. Acyclicity — no node reaches itself through owner references.
//  3. Uniqueness — no composite lists a node twice; Mapping key order and key
//     map agree exactly.
//  4. Exclusivity — no node is listed by more than one composite.
//
// Violations are unreachable through the public API; Check exists so tests
// (and cautious callers after long mutation sequences) can certify state
// rather than trust it.
// Complexity: O(nodes + references).
func (s *Store) Check() error {
	nodes := s.Nodes()

	// listedBy records which owner lists each node, to catch double listing.
	listedBy := make(map[Node]Node, len(nodes))

	for _, n := range nodes {
		nd, err := s.get(n)
		if err != nil {
			return fmt.Errorf("%w: live handle %v failed to resolve: %v", ErrInconsistent, n, err)
		}

		// 1. Forward references: every listed child is live, points back,
		//    and is listed exactly once across the whole store.
		switch nd.kind {
		case Leaf:
			if len(nd.seq) > 0 || len(nd.keyed) > 0 || len(nd.order) > 0 {
				return fmt.Errorf("%w: leaf %v holds children", ErrInconsistent, n)
			}
		case Sequence:
			seen := make(map[Node]struct{}, len(nd.seq))
			for i, c := range nd.seq {
				if _, dup := seen[c]; dup {
					return fmt.Errorf("%w: sequence %v lists %v twice", ErrInconsistent, n, c)
				}
				seen[c] = struct{}{}
				if err = s.checkChild(n, c, ""); err != nil {
					return fmt.Errorf("%v at index %d: %w", n, i, err)
				}
				if prev, dup := listedBy[c]; dup {
					return fmt.Errorf("%w: %v listed by both %v and %v", ErrInconsistent, c, prev, n)
				}
				listedBy[c] = n
			}
		case Mapping:
			if len(nd.order) != len(nd.keyed) {
				return fmt.Errorf("%w: mapping %v key order and key map disagree", ErrInconsistent, n)
			}
			for _, k := range nd.order {
				c, ok := nd.keyed[k]
				if !ok {
					return fmt.Errorf("%w: mapping %v orders unknown key %q", ErrInconsistent, n, k)
				}
				if err = s.checkChild(n, c, k); err != nil {
					return fmt.Errorf("%v under key %q: %w", n, k, err)
				}
				if prev, dup := listedBy[c]; dup {
					return fmt.Errorf("%w: %v listed by both %v and %v", ErrInconsistent, c, prev, n)
				}
				listedBy[c] = n
			}
		default:
			return fmt.Errorf("%w: %v has unknown kind %v", ErrInconsistent, n, nd.kind)
		}
	}

	// 2. Back references: every owned node is listed by its owner.
	for _, n := range nodes {
		nd, _ := s.get(n)
		if nd == nil || nd.owner.IsNone() {
			continue
		}
		if listedBy[n] != nd.owner {
			return fmt.Errorf("%w: %v claims owner %v but is listed by %v", ErrInconsistent, n, nd.owner, listedBy[n])
		}
	}

	// 3. Acyclicity: the owner chain of every node must terminate within the
	//    store's size.
	limit := len(nodes)
	for _, n := range nodes {
		steps := 0
		for cur := n; ; {
			nd, err := s.get(cur)
			if err != nil {
				return fmt.Errorf("%w: owner chain of %v broke at %v", ErrInconsistent, n, cur)
			}
			if nd.owner.IsNone() {
				break
			}
			cur = nd.owner
			if steps++; steps > limit {
				return fmt.Errorf("%w: owner chain of %v does not terminate", ErrInconsistent, n)
			}
		}
	}

	return nil
}

// checkChild verifies one forward reference: the child is live, points back
// at owner, and carries the key it is listed under.
func (s *Store) checkChild(owner, child Node, key string) error {
	cd, err := s.get(child)
	if err != nil {
		return fmt.Errorf("%w: lists dead child %v", ErrInconsistent, child)
	}
	if cd.owner != owner {
		return fmt.Errorf("%w: child %v points at %v instead", ErrInconsistent, child, cd.owner)
	}
	if cd.key != key {
		return fmt.Errorf("%w: child %v carries key %q, listed under %q", ErrInconsistent, child, cd.key, key)
	}

	return nil
}
