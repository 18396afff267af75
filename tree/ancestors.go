package tree

import "fmt"

// AncestorIter walks a node's owner chain lazily, nearest owner first.
// It is single-use: once Next returns false it stays exhausted. The walk is
// finite because acyclicity is a store invariant.
//
// The iterator reads the store on each step; mutating the chain mid-walk
// (detaching an ancestor, releasing a node) ends the walk at the break.
type AncestorIter struct {
	s   *Store
	cur Node
}

// Ancestors returns an iterator over n's ancestors, from nearest to farthest.
// A detached node yields an empty iteration.
// Complexity: O(1) to create, O(1) per Next step.
func (s *Store) Ancestors(n Node) (*AncestorIter, error) {
	nd, err := s.get(n)
	if err != nil {
		return nil, fmt.Errorf("tree: ancestors: %w", err)
	}

	return &AncestorIter{s: s, cur: nd.owner}, nil
}

// Next yields the next ancestor. The second result is false once the chain
// is exhausted.
func (it *AncestorIter) Next() (Node, bool) {
	if it.cur.IsNone() {
		return NoNode, false
	}
	n := it.cur
	nd, err := it.s.get(n)
	if err != nil {
		// The chain was mutated mid-walk; stop cleanly.
		it.cur = NoNode

		return NoNode, false
	}
	it.cur = nd.owner

	return n, true
}

// Depth reports the number of ancestors above n (0 for a root or detached
// node).
// Complexity: O(depth).
func (s *Store) Depth(n Node) (int, error) {
	it, err := s.Ancestors(n)
	if err != nil {
		return 0, fmt.Errorf("tree: depth: %w", err)
	}
	d := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		d++
	}

	return d, nil
}

// Root reports the farthest ancestor of n, or n itself when detached.
// Complexity: O(depth).
func (s *Store) Root(n Node) (Node, error) {
	it, err := s.Ancestors(n)
	if err != nil {
		return NoNode, fmt.Errorf("tree: root: %w", err)
	}
	root := n
	for a, ok := it.Next(); ok; a, ok = it.Next() {
		root = a
	}

	return root, nil
}
