package tree

import "fmt"

// Kind reports the node's kind.
// Complexity: O(1).
func (s *Store) Kind(n Node) (Kind, error) {
	nd, err := s.get(n)
	if err != nil {
		return 0, fmt.Errorf("tree: kind: %w", err)
	}

	return nd.kind, nil
}

// Tag reports a composite's tag. Fails with ErrNotComposite on leaves.
// Complexity: O(1).
func (s *Store) Tag(n Node) (string, error) {
	nd, err := s.get(n)
	if err != nil {
		return "", fmt.Errorf("tree: tag: %w", err)
	}
	if nd.kind == Leaf {
		return "", ErrNotComposite
	}

	return nd.tag, nil
}

// Payload reports a leaf's payload. []byte payloads are returned as a fresh
// copy so the caller can never reach the stored bytes. Fails with ErrNotLeaf
// on composites.
// Complexity: O(1), O(len) for []byte payloads.
func (s *Store) Payload(n Node) (any, error) {
	nd, err := s.get(n)
	if err != nil {
		return nil, fmt.Errorf("tree: payload: %w", err)
	}
	if nd.kind != Leaf {
		return nil, ErrNotLeaf
	}
	if b, ok := nd.payload.([]byte); ok {
		return append([]byte(nil), b...), nil
	}

	return nd.payload, nil
}

// Owner reports the node's current owner, or NoNode while detached.
// Read-only, no side effects.
// Complexity: O(1).
func (s *Store) Owner(n Node) (Node, error) {
	nd, err := s.get(n)
	if err != nil {
		return NoNode, fmt.Errorf("tree: owner: %w", err)
	}

	return nd.owner, nil
}

// Arity reports the number of children of a composite.
// Complexity: O(1).
func (s *Store) Arity(owner Node) (int, error) {
	ow, err := s.get(owner)
	if err != nil {
		return 0, fmt.Errorf("tree: arity: %w", err)
	}
	switch ow.kind {
	case Sequence:
		return len(ow.seq), nil
	case Mapping:
		return len(ow.keyed), nil
	default:
		return 0, ErrNotComposite
	}
}

// Children returns a snapshot of the composite's children: sequence order for
// Sequence owners, key insertion order for Mapping owners. The slice is
// freshly allocated on every call; mutating it never reaches the store.
// Complexity: O(arity).
func (s *Store) Children(owner Node) ([]Node, error) {
	ow, err := s.get(owner)
	if err != nil {
		return nil, fmt.Errorf("tree: children: %w", err)
	}
	switch ow.kind {
	case Sequence:
		return append([]Node(nil), ow.seq...), nil
	case Mapping:
		out := make([]Node, 0, len(ow.order))
		for _, k := range ow.order {
			out = append(out, ow.keyed[k])
		}

		return out, nil
	default:
		return nil, ErrNotComposite
	}
}

// Keys returns a snapshot of a Mapping's keys in insertion order.
// Complexity: O(arity).
func (s *Store) Keys(owner Node) ([]string, error) {
	ow, err := s.get(owner)
	if err != nil {
		return nil, fmt.Errorf("tree: keys: %w", err)
	}
	if ow.kind != Mapping {
		if ow.kind == Leaf {
			return nil, ErrNotComposite
		}

		return nil, ErrNotMapping
	}

	return append([]string(nil), ow.order...), nil
}

// ChildAt reports the child at position at within a Sequence owner.
// Complexity: O(1).
func (s *Store) ChildAt(owner Node, at int) (Node, error) {
	ow, err := s.get(owner)
	if err != nil {
		return NoNode, fmt.Errorf("tree: child at: %w", err)
	}
	if ow.kind != Sequence {
		if ow.kind == Leaf {
			return NoNode, ErrNotComposite
		}

		return NoNode, ErrNotSequence
	}
	if at < 0 || at >= len(ow.seq) {
		return NoNode, ErrIndexRange
	}

	return ow.seq[at], nil
}

// ChildByKey reports the child under key within a Mapping owner.
// Fails with ErrUnknownKey when the key is absent.
// Complexity: O(1).
func (s *Store) ChildByKey(owner Node, key string) (Node, error) {
	ow, err := s.get(owner)
	if err != nil {
		return NoNode, fmt.Errorf("tree: child by key: %w", err)
	}
	if ow.kind != Mapping {
		if ow.kind == Leaf {
			return NoNode, ErrNotComposite
		}

		return NoNode, ErrNotMapping
	}
	c, ok := ow.keyed[key]
	if !ok {
		return NoNode, ErrUnknownKey
	}

	return c, nil
}

// KeyOf reports the key under which n is attached to its Mapping owner.
// Fails with ErrNotAttached for detached nodes and ErrNotKeyed for nodes
// attached under a Sequence.
// Complexity: O(1).
func (s *Store) KeyOf(n Node) (string, error) {
	nd, err := s.get(n)
	if err != nil {
		return "", fmt.Errorf("tree: key of: %w", err)
	}
	if nd.owner.IsNone() {
		return "", ErrNotAttached
	}
	if nd.key == "" {
		return "", ErrNotKeyed
	}

	return nd.key, nil
}
