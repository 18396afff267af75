// Package arena provides the memory model shared by every entwine store:
// a generational slot table that owns its entries exclusively and hands out
// stable, copyable handles instead of pointers.
//
// Why an arena?
//
// Bidirectional links (owner ↔ child, partner ↔ partner) form logical cycles.
// Storing them as Go pointers would make every store a web of mutually
// reachable objects; storing them as handles into one owned table keeps the
// logical relation while the table remains the sole owner of every entry.
// A handle is a small comparable value — it can sit in maps, slices, and
// other entries without tying lifetimes together.
//
// Key properties:
//   - The zero Handle is None and never designates an entry.
//   - Remove bumps the slot's generation on the next reuse, so a handle that
//     outlives its entry is detected (ErrNoSuchEntity), not silently aliased
//     to a newcomer.
//   - Get returns a pointer into the table for the *owning* store's internal
//     use only; stores built on Table never let that pointer escape their
//     public API.
//
// Errors:
//
//	ErrInvalidArgument - taxonomy root: a supplied value is malformed or absent.
//	ErrIllegalState    - taxonomy root: a precondition about current links is violated.
//	ErrNoneHandle      - the zero Handle where an entry is required.
//	ErrNoSuchEntity    - the handle does not designate a live entry (removed or recycled).
//
// Every sentinel in the packages built on arena wraps one of the two taxonomy
// roots, so callers can classify any failure with a single errors.Is check.
//
// Complexity: Insert, Get, Remove, Contains and Len are O(1); Handles is O(n).
package arena
