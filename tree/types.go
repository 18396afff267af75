// Package tree defines the node kinds, the Node handle, and the sentinel
// errors of the hierarchy store.
package tree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/entwine/arena"
)

// Kind is the closed tagged variant of node roles. Traversal and export code
// switches on Kind exhaustively instead of probing payload types.
type Kind uint8

const (
	// Leaf holds an immutable payload and never owns children.
	Leaf Kind = iota + 1
	// Sequence is a composite whose children form an ordered list.
	Sequence
	// Mapping is a composite whose children are addressed by unique string
	// keys; iteration follows key insertion order.
	Mapping
)

// String renders the kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Node is a handle to a node owned by a Store. The zero Node is NoNode.
// Nodes are comparable and usable as map keys.
type Node arena.Handle

// NoNode is the zero Node: "no node". Owner returns it for detached nodes.
var NoNode Node

// IsNone reports whether n is the zero Node.
func (n Node) IsNone() bool { return arena.Handle(n).IsNone() }

// String renders the handle for diagnostics.
func (n Node) String() string { return arena.Handle(n).String() }

// Sentinel errors. Each wraps one of the two taxonomy roots in package arena,
// so errors.Is(err, arena.ErrInvalidArgument) / arena.ErrIllegalState
// classifies every failure.
var (
	// ErrNilPayload rejects a nil leaf payload.
	ErrNilPayload = fmt.Errorf("tree: leaf payload must be non-nil: %w", arena.ErrInvalidArgument)

	// ErrEmptyTag rejects an empty composite tag.
	ErrEmptyTag = fmt.Errorf("tree: composite tag must be non-empty: %w", arena.ErrInvalidArgument)

	// ErrEmptyKey rejects an empty child key under a Mapping.
	ErrEmptyKey = fmt.Errorf("tree: child key must be non-empty: %w", arena.ErrInvalidArgument)

	// ErrIndexRange rejects an insertion or lookup index outside the valid range.
	ErrIndexRange = fmt.Errorf("tree: index out of range: %w", arena.ErrInvalidArgument)

	// ErrNotComposite indicates a child operation on a leaf node.
	ErrNotComposite = fmt.Errorf("tree: node is not a composite: %w", arena.ErrIllegalState)

	// ErrNotSequence indicates an index-addressed operation on a non-Sequence owner.
	ErrNotSequence = fmt.Errorf("tree: owner is not a sequence composite: %w", arena.ErrIllegalState)

	// ErrNotMapping indicates a key-addressed operation on a non-Mapping owner.
	ErrNotMapping = fmt.Errorf("tree: owner is not a mapping composite: %w", arena.ErrIllegalState)

	// ErrNotLeaf indicates a payload operation on a composite node.
	ErrNotLeaf = fmt.Errorf("tree: node is not a leaf: %w", arena.ErrIllegalState)

	// ErrAlreadyAttached indicates the child already has an owner; detach first.
	ErrAlreadyAttached = fmt.Errorf("tree: node already has an owner: %w", arena.ErrIllegalState)

	// ErrNotAttached indicates the node has no owner to detach from.
	ErrNotAttached = fmt.Errorf("tree: node has no owner: %w", arena.ErrIllegalState)

	// ErrAncestryCycle indicates the attach would make a node its own ancestor.
	ErrAncestryCycle = fmt.Errorf("tree: attach would create an ancestry cycle: %w", arena.ErrIllegalState)

	// ErrDuplicateKey indicates the Mapping owner already holds the key.
	ErrDuplicateKey = fmt.Errorf("tree: duplicate child key: %w", arena.ErrIllegalState)

	// ErrUnknownKey indicates the Mapping owner holds no child under the key.
	ErrUnknownKey = fmt.Errorf("tree: no child under key: %w", arena.ErrIllegalState)

	// ErrNotKeyed indicates the node is not attached under a Mapping owner.
	ErrNotKeyed = fmt.Errorf("tree: node is not attached under a mapping: %w", arena.ErrIllegalState)

	// ErrStillLinked indicates Release on a node that is still attached or
	// still owns children.
	ErrStillLinked = fmt.Errorf("tree: node is still linked: %w", arena.ErrIllegalState)

	// ErrInconsistent is reported by Check when the store's internal state
	// violates an invariant. It should be unreachable through the public API.
	ErrInconsistent = errors.New("tree: store inconsistency detected")
)
