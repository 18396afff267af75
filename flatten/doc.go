// Package flatten converts tree.Store hierarchies to and from plain values:
// nested structures built only from ordered slices, string-keyed maps, and
// scalars. Plain values are handy for structural equality in tests and for
// handing a subtree to encoders without exposing the store's layout.
//
// Shape per node kind (stable key names):
//
//	leaf, string payload   → {"text": s}
//	leaf, other payload    → {"payload": v}
//	sequence composite     → {"tag": t, "children": []any{...}}
//	mapping composite      → {"tag": t, "children": map[string]any{...}}
//
// Flatten dispatches purely on the public kind/tag/payload/children
// accessors — never on store internals — so any structurally equal hierarchy
// flattens identically regardless of the mutation order that built it.
//
// Build is the inverse: it grows a detached subtree inside a store from a
// plain value. Flatten∘Build and Build∘Flatten round-trip structurally.
//
// MarshalYAML is the module's one serialization transform: Flatten followed
// by YAML encoding, useful for golden files and human inspection.
//
// Errors:
//
//	ErrStoreNil  - nil store
//	ErrBadShape  - Build input does not match any of the shapes above
//	               (wraps arena.ErrInvalidArgument)
//
// Complexity: O(n) over the subtree for every function.
package flatten
