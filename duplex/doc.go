// Package duplex implements dual-endpoint one-to-many association: links
// (think wormholes) that reference exactly one endpoint of each role —
// a departure and an arrival — while every endpoint tracks the set of links
// referencing it.
//
//	D1 ──w──▶ Ar1      NewLink(D1, Ar1): registered on both endpoints
//	D2 ──w──▶ Ar1      SetDeparture(w, D2): D1 forgets w, D2 learns it,
//	                   w's reference moves — one logical step
//
// Invariants:
//   - Symmetry — Links(e) contains l exactly when l references e under e's role.
//   - Completeness — a live link always has both references set.
//   - Uniqueness — an endpoint's link set holds no duplicates.
//
// Reassigning a link to the endpoint it already references is a policy
// choice: a fresh Store rejects it with ErrSameEndpoint (the simpler
// postcondition), while New(WithIdempotentReassign()) accepts it as a no-op.
//
// Errors:
//
//	ErrRoleMismatch  - an endpoint of the wrong role (wraps arena.ErrInvalidArgument)
//	ErrSameEndpoint  - reassignment to the current endpoint under the default
//	                   policy (wraps arena.ErrIllegalState)
//	ErrEndpointBusy  - ReleaseEndpoint while links still reference it
//	                   (wraps arena.ErrIllegalState)
//	ErrInconsistent  - Check found a corrupted store
//
// Endpoint sets preserve link insertion order, so Links is deterministic.
// The Store is not safe for concurrent use.
package duplex
