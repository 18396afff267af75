// Package tree implements composite/leaf hierarchies over an arena.Table:
// every node is either a leaf carrying an immutable payload or a composite
// holding children, and every attached node knows its owner.
//
// Two composite shapes are provided as distinct kinds rather than one
// unified collection:
//   - Sequence — children form an ordered list, addressed by insertion index
//   - Mapping  — children are addressed by a unique string key; iteration
//     follows key insertion order
//
// Both shapes navigate in O(1) in both directions: owner → children through
// the composite's collection, child → owner through the back reference.
//
// Invariants (hold after every public call, or the call fails untouched):
//  1. Symmetry   — if Owner(x) == y then Children(y) contains x, and vice versa.
//  2. Acyclicity — no node is its own ancestor; Attach walks the candidate
//     owner's ancestor chain and rejects before mutating.
//  3. Uniqueness — a composite's collection holds no duplicate nodes and a
//     Mapping no duplicate keys.
//  4. Exclusivity — a node has at most one owner; attaching requires it to be
//     detached first.
//  5. No representation exposure — Children, Keys, and []byte payloads are
//     snapshots; mutating a returned value never reaches the store.
//
// Lifecycle: nodes are created detached; they join a hierarchy only through
// Attach/AttachKeyed and leave it only through Detach. Release reclaims a
// node only once it is detached and childless — the store never unlinks
// anything implicitly.
//
// Errors:
//
//	ErrNilPayload, ErrEmptyTag, ErrEmptyKey, ErrIndexRange - malformed input
//	  (wrap arena.ErrInvalidArgument)
//	ErrNotComposite, ErrNotSequence, ErrNotMapping, ErrNotLeaf,
//	ErrAlreadyAttached, ErrNotAttached, ErrAncestryCycle, ErrDuplicateKey,
//	ErrUnknownKey, ErrNotKeyed, ErrStillLinked - violated relationship
//	  preconditions (wrap arena.ErrIllegalState)
//	ErrInconsistent - Check found a corrupted store
//
// Complexity: Attach/Detach are O(k) in the owner's arity (plus O(depth) for
// the cycle guard on Attach); accessors are O(1); snapshots are O(k).
package tree
