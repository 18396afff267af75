package duplex

import (
	"fmt"

	"github.com/katalvlaran/entwine/arena"
)

// endpointRec is the arena entry behind every Endpoint handle. links keeps
// insertion order; membership is O(n) on removal, which stays cheap at the
// arities this store is built for.
type endpointRec struct {
	role  Role
	tag   string
	links []Link
}

// linkRec is the arena entry behind every Link handle. Both references are
// always set on a live link.
type linkRec struct {
	dep Endpoint
	arr Endpoint
}

// Store holds one population of endpoints and links in two private arenas.
// Not safe for concurrent use: mutations are read-then-write sequences with
// no internal locking.
type Store struct {
	eps   *arena.Table[endpointRec]
	links *arena.Table[linkRec]
	opts  Options
}

// New returns an empty Store under the given policy options.
// Complexity: O(len(opts)).
func New(opts ...Option) *Store {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Store{
		eps:   arena.NewTable[endpointRec](),
		links: arena.NewTable[linkRec](),
		opts:  o,
	}
}

// NewDeparture creates an endpoint of role Departure with an empty link set.
// The tag is diagnostic and may be empty.
// Complexity: O(1).
func (s *Store) NewDeparture(tag string) Endpoint {
	return Endpoint(s.eps.Insert(endpointRec{role: Departure, tag: tag}))
}

// NewArrival creates an endpoint of role Arrival with an empty link set.
// Complexity: O(1).
func (s *Store) NewArrival(tag string) Endpoint {
	return Endpoint(s.eps.Insert(endpointRec{role: Arrival, tag: tag}))
}

// NewLink creates a link referencing dep and arr, registering it in both
// endpoints' sets and setting both of its references as one logical step.
// Role mismatches fail with ErrRoleMismatch before any state change.
// Complexity: O(1).
func (s *Store) NewLink(dep, arr Endpoint) (Link, error) {
	// 1. Resolve and role-check both endpoints.
	de, err := s.endpointOf(dep, Departure)
	if err != nil {
		return NoLink, fmt.Errorf("duplex: new link departure: %w", err)
	}
	ae, err := s.endpointOf(arr, Arrival)
	if err != nil {
		return NoLink, fmt.Errorf("duplex: new link arrival: %w", err)
	}

	// 2. Mint the link, then register it on both sides. Links live in a
	//    separate table, so the insert does not move the endpoint records
	//    resolved above.
	l := Link(s.links.Insert(linkRec{dep: dep, arr: arr}))
	de.links = append(de.links, l)
	ae.links = append(ae.links, l)

	return l, nil
}

// SetDeparture points l at a new departure endpoint: the old endpoint's set
// forgets l, the new endpoint's set learns it, and l's reference moves — one
// logical step, with nothing written until every check has passed.
//
// Reassigning the current endpoint follows the store policy: ErrSameEndpoint
// by default, a no-op under WithIdempotentReassign.
// Complexity: O(arity of the old endpoint).
func (s *Store) SetDeparture(l Link, e Endpoint) error {
	return s.reassign(l, e, Departure)
}

// SetArrival points l at a new arrival endpoint; see SetDeparture.
// Complexity: O(arity of the old endpoint).
func (s *Store) SetArrival(l Link, e Endpoint) error {
	return s.reassign(l, e, Arrival)
}

// reassign moves one side of l to endpoint e of the given role.
func (s *Store) reassign(l Link, e Endpoint, role Role) error {
	// 1. Resolve the link and the new endpoint, role-checked.
	lr, err := s.links.Get(arena.Handle(l))
	if err != nil {
		return fmt.Errorf("duplex: reassign link: %w", err)
	}
	ne, err := s.endpointOf(e, role)
	if err != nil {
		return fmt.Errorf("duplex: reassign endpoint: %w", err)
	}

	// 2. Same-endpoint policy.
	old := lr.dep
	if role == Arrival {
		old = lr.arr
	}
	if old == e {
		if s.opts.IdempotentReassign {
			return nil
		}

		return ErrSameEndpoint
	}

	// 3. Resolve the old endpoint; by the symmetry invariant it is live.
	oe, err := s.eps.Get(arena.Handle(old))
	if err != nil {
		return fmt.Errorf("%w: %s endpoint of %v is dead: %v", ErrInconsistent, role, l, err)
	}

	// 4. Move the link across the two sets and update its reference.
	at := -1
	for i, cand := range oe.links {
		if cand == l {
			at = i
			break
		}
	}
	if at < 0 {
		return fmt.Errorf("%w: %v missing from its %s endpoint's set", ErrInconsistent, l, role)
	}
	oe.links = append(oe.links[:at], oe.links[at+1:]...)
	ne.links = append(ne.links, l)
	if role == Departure {
		lr.dep = e
	} else {
		lr.arr = e
	}

	return nil
}

// RemoveLink unregisters l from both endpoints' sets and reclaims it, as one
// logical step. After RemoveLink the handle is dead.
// Complexity: O(arity of both endpoints).
func (s *Store) RemoveLink(l Link) error {
	// 1. Resolve the link and both endpoints.
	lr, err := s.links.Get(arena.Handle(l))
	if err != nil {
		return fmt.Errorf("duplex: remove link: %w", err)
	}
	de, err := s.eps.Get(arena.Handle(lr.dep))
	if err != nil {
		return fmt.Errorf("%w: departure of %v is dead: %v", ErrInconsistent, l, err)
	}
	ae, err := s.eps.Get(arena.Handle(lr.arr))
	if err != nil {
		return fmt.Errorf("%w: arrival of %v is dead: %v", ErrInconsistent, l, err)
	}

	// 2. Unregister from both sets, then reclaim.
	de.links = without(de.links, l)
	ae.links = without(ae.links, l)

	return s.links.Remove(arena.Handle(l))
}

// ReleaseEndpoint reclaims an endpoint with an empty link set. Fails with
// ErrEndpointBusy otherwise; the store never rewires links implicitly.
// Complexity: O(1).
func (s *Store) ReleaseEndpoint(e Endpoint) error {
	rec, err := s.eps.Get(arena.Handle(e))
	if err != nil {
		return fmt.Errorf("duplex: release endpoint: %w", err)
	}
	if len(rec.links) > 0 {
		return ErrEndpointBusy
	}

	return s.eps.Remove(arena.Handle(e))
}

// Links returns a snapshot of the links referencing e, in registration order.
// The slice is freshly allocated on every call; mutating it never reaches the
// store.
// Complexity: O(arity).
func (s *Store) Links(e Endpoint) ([]Link, error) {
	rec, err := s.eps.Get(arena.Handle(e))
	if err != nil {
		return nil, fmt.Errorf("duplex: links: %w", err)
	}

	return append([]Link(nil), rec.links...), nil
}

// Departure reports the departure endpoint of l.
// Complexity: O(1).
func (s *Store) Departure(l Link) (Endpoint, error) {
	lr, err := s.links.Get(arena.Handle(l))
	if err != nil {
		return NoEndpoint, fmt.Errorf("duplex: departure: %w", err)
	}

	return lr.dep, nil
}

// Arrival reports the arrival endpoint of l.
// Complexity: O(1).
func (s *Store) Arrival(l Link) (Endpoint, error) {
	lr, err := s.links.Get(arena.Handle(l))
	if err != nil {
		return NoEndpoint, fmt.Errorf("duplex: arrival: %w", err)
	}

	return lr.arr, nil
}

// RoleOf reports the role of endpoint e.
// Complexity: O(1).
func (s *Store) RoleOf(e Endpoint) (Role, error) {
	rec, err := s.eps.Get(arena.Handle(e))
	if err != nil {
		return 0, fmt.Errorf("duplex: role of: %w", err)
	}

	return rec.role, nil
}

// Tag reports the diagnostic tag of endpoint e.
// Complexity: O(1).
func (s *Store) Tag(e Endpoint) (string, error) {
	rec, err := s.eps.Get(arena.Handle(e))
	if err != nil {
		return "", fmt.Errorf("duplex: tag: %w", err)
	}

	return rec.tag, nil
}

// Endpoints reports the number of live endpoints; LinkCount the number of
// live links.
func (s *Store) Endpoints() int { return s.eps.Len() }

// LinkCount reports the number of live links.
func (s *Store) LinkCount() int { return s.links.Len() }

// Check audits the whole store: every link's references are live endpoints of
// the right role that list the link exactly once, and every listed link
// points back. A nil result certifies the store; violations are wrapped in
// ErrInconsistent.
// Complexity: O(endpoints + links + references).
func (s *Store) Check() error {
	// 1. Link side: both references live, role-correct, and listing the link.
	for _, h := range s.links.Handles() {
		l := Link(h)
		lr, err := s.links.Get(h)
		if err != nil {
			return fmt.Errorf("%w: live link %v failed to resolve: %v", ErrInconsistent, l, err)
		}
		if err = s.checkSide(l, lr.dep, Departure); err != nil {
			return err
		}
		if err = s.checkSide(l, lr.arr, Arrival); err != nil {
			return err
		}
	}

	// 2. Endpoint side: every listed link is live, duplicate-free, and
	//    references the endpoint under its role.
	for _, h := range s.eps.Handles() {
		e := Endpoint(h)
		rec, _ := s.eps.Get(h)
		seen := make(map[Link]struct{}, len(rec.links))
		for _, l := range rec.links {
			if _, dup := seen[l]; dup {
				return fmt.Errorf("%w: endpoint %v lists %v twice", ErrInconsistent, e, l)
			}
			seen[l] = struct{}{}
			lr, err := s.links.Get(arena.Handle(l))
			if err != nil {
				return fmt.Errorf("%w: endpoint %v lists dead link %v", ErrInconsistent, e, l)
			}
			ref := lr.dep
			if rec.role == Arrival {
				ref = lr.arr
			}
			if ref != e {
				return fmt.Errorf("%w: %v listed by %v but references %v", ErrInconsistent, l, e, ref)
			}
		}
	}

	return nil
}

// checkSide verifies one link reference during Check.
func (s *Store) checkSide(l Link, e Endpoint, role Role) error {
	rec, err := s.eps.Get(arena.Handle(e))
	if err != nil {
		return fmt.Errorf("%w: %s of %v is dead", ErrInconsistent, role, l)
	}
	if rec.role != role {
		return fmt.Errorf("%w: %s of %v has role %s", ErrInconsistent, role, l, rec.role)
	}
	found := 0
	for _, cand := range rec.links {
		if cand == l {
			found++
		}
	}
	if found != 1 {
		return fmt.Errorf("%w: %s endpoint of %v lists it %d times", ErrInconsistent, role, l, found)
	}

	return nil
}

// endpointOf resolves e and requires the given role.
func (s *Store) endpointOf(e Endpoint, role Role) (*endpointRec, error) {
	rec, err := s.eps.Get(arena.Handle(e))
	if err != nil {
		return nil, err
	}
	if rec.role != role {
		return nil, ErrRoleMismatch
	}

	return rec, nil
}

// without returns links with the first occurrence of l removed.
func without(links []Link, l Link) []Link {
	for i, cand := range links {
		if cand == l {
			return append(links[:i], links[i+1:]...)
		}
	}

	return links
}
