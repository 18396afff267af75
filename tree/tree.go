package tree

import (
	"fmt"

	"github.com/katalvlaran/entwine/arena"
)

// node is the arena entry behind every Node handle. Exactly one collection
// field is populated, matching kind; owner and key are the back references.
type node struct {
	kind    Kind
	tag     string // composite tag; empty on leaves
	payload any    // leaf payload; nil on composites
	owner   Node   // NoNode while detached
	key     string // key under a Mapping owner; empty otherwise

	seq   []Node          // Sequence children, in order
	order []string        // Mapping key insertion order
	keyed map[string]Node // Mapping key → child
}

// Store holds one hierarchy population. All nodes referenced by a Store's
// handles live in its private arena; the store is their exclusive owner.
//
// Store is not safe for concurrent use: mutations are multi-step
// read-then-write sequences with no internal locking.
type Store struct {
	tab *arena.Table[node]
}

// New returns an empty Store.
// Complexity: O(1).
func New() *Store {
	return &Store{tab: arena.NewTable[node]()}
}

// NewLeaf creates a detached leaf holding payload.
//
// The payload must be non-nil; []byte payloads are copied on the way in (and
// again on the way out of Payload), so the caller's slice never aliases the
// store. Fails with ErrNilPayload.
// Complexity: O(1), O(len) for []byte payloads.
func (s *Store) NewLeaf(payload any) (Node, error) {
	if payload == nil {
		return NoNode, ErrNilPayload
	}
	if b, ok := payload.([]byte); ok {
		payload = append([]byte(nil), b...)
	}

	return Node(s.tab.Insert(node{kind: Leaf, payload: payload})), nil
}

// NewSequence creates a detached Sequence composite tagged tag.
// Fails with ErrEmptyTag. Complexity: O(1).
func (s *Store) NewSequence(tag string) (Node, error) {
	if tag == "" {
		return NoNode, ErrEmptyTag
	}

	return Node(s.tab.Insert(node{kind: Sequence, tag: tag})), nil
}

// NewMapping creates a detached Mapping composite tagged tag.
// Fails with ErrEmptyTag. Complexity: O(1).
func (s *Store) NewMapping(tag string) (Node, error) {
	if tag == "" {
		return NoNode, ErrEmptyTag
	}

	return Node(s.tab.Insert(node{kind: Mapping, tag: tag, keyed: make(map[string]Node)})), nil
}

// Release reclaims a node that no relation references anymore.
//
// Preconditions: the node is detached and, if composite, childless. The store
// never unlinks implicitly — callers Detach in the right order first.
// Fails with ErrStillLinked. After Release the handle is dead: every later
// use reports arena.ErrNoSuchEntity.
// Complexity: O(1).
func (s *Store) Release(n Node) error {
	nd, err := s.get(n)
	if err != nil {
		return fmt.Errorf("tree: release: %w", err)
	}
	if !nd.owner.IsNone() {
		return ErrStillLinked
	}
	if len(nd.seq) > 0 || len(nd.keyed) > 0 {
		return ErrStillLinked
	}

	return s.tab.Remove(arena.Handle(n))
}

// Len reports the number of live nodes in the store.
// Complexity: O(1).
func (s *Store) Len() int { return s.tab.Len() }

// Contains reports whether n designates a live node of this store.
// Complexity: O(1).
func (s *Store) Contains(n Node) bool { return s.tab.Contains(arena.Handle(n)) }

// Nodes returns the handles of all live nodes in ascending slot order.
// Complexity: O(n) over store capacity.
func (s *Store) Nodes() []Node {
	hs := s.tab.Handles()
	out := make([]Node, len(hs))
	for i, h := range hs {
		out[i] = Node(h)
	}

	return out
}

// get resolves n to its arena entry. The pointer is for internal mutation
// only and never escapes the public API.
func (s *Store) get(n Node) (*node, error) {
	return s.tab.Get(arena.Handle(n))
}
