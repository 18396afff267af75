// Package pairing implements symmetric pairwise association: entities that
// hold mutual optional references to each other, where setting one side sets
// the other and clearing one side clears the other, in the same logical
// operation.
//
// The canonical picture is a pair of linked portals:
//
//	A ⇄ B      Pair(A, B): both sides set together
//	A    B     Unpair(A): both sides cleared together
//
// Invariants:
//   - Symmetry — Partner(x) == y implies Partner(y) == x, always.
//   - Exclusivity — an entity has at most one partner; pairing requires both
//     sides to be free.
//   - No self-pairing — an entity never partners with itself.
//
// Pairing an entity with its current partner is rejected like any other
// occupied-side pairing: the caller must Unpair first. No operation ever
// leaves a half-set pair behind — failures happen before the first write.
//
// Errors:
//
//	ErrSelfPair       - Pair(a, a) (wraps arena.ErrInvalidArgument)
//	ErrAlreadyPaired  - a side is occupied (wraps arena.ErrIllegalState)
//	ErrNotPaired      - Unpair on a free entity (wraps arena.ErrIllegalState)
//	ErrInconsistent   - Check found a corrupted registry
//
// All operations are O(1). The Store is not safe for concurrent use.
package pairing
