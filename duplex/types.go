// Package duplex defines the endpoint roles, the Endpoint and Link handles,
// the store options, and the sentinel errors of the dual-endpoint store.
package duplex

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/entwine/arena"
)

// Role is the closed tagged variant of endpoint roles.
type Role uint8

const (
	// Departure endpoints are referenced by a link's departure side.
	Departure Role = iota + 1
	// Arrival endpoints are referenced by a link's arrival side.
	Arrival
)

// String renders the role for diagnostics.
func (r Role) String() string {
	switch r {
	case Departure:
		return "departure"
	case Arrival:
		return "arrival"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

var (
	// ErrRoleMismatch indicates an endpoint of the wrong role was supplied:
	// an arrival where a departure belongs, or the reverse.
	ErrRoleMismatch = fmt.Errorf("duplex: endpoint role mismatch: %w", arena.ErrInvalidArgument)

	// ErrSameEndpoint indicates a reassignment to the endpoint the link
	// already references, under the default (strict) policy.
	ErrSameEndpoint = fmt.Errorf("duplex: link already references this endpoint: %w", arena.ErrIllegalState)

	// ErrEndpointBusy indicates ReleaseEndpoint while links still reference
	// the endpoint; remove or reassign them first.
	ErrEndpointBusy = fmt.Errorf("duplex: endpoint is still referenced by links: %w", arena.ErrIllegalState)

	// ErrInconsistent is reported by Check when the store violates an
	// invariant. Unreachable through the public API.
	ErrInconsistent = errors.New("duplex: store inconsistency detected")
)

// Endpoint is a handle to an endpoint owned by a Store. The zero Endpoint is
// NoEndpoint.
type Endpoint arena.Handle

// Link is a handle to a link owned by a Store. The zero Link is NoLink.
type Link arena.Handle

// NoEndpoint is the zero Endpoint.
var NoEndpoint Endpoint

// NoLink is the zero Link.
var NoLink Link

// IsNone reports whether e is the zero Endpoint.
func (e Endpoint) IsNone() bool { return arena.Handle(e).IsNone() }

// String renders the handle for diagnostics.
func (e Endpoint) String() string { return arena.Handle(e).String() }

// IsNone reports whether l is the zero Link.
func (l Link) IsNone() bool { return arena.Handle(l).IsNone() }

// String renders the handle for diagnostics.
func (l Link) String() string { return arena.Handle(l).String() }

// Option configures a Store at construction time.
type Option func(*Options)

// Options holds the construction-time policy of a Store.
type Options struct {
	// IdempotentReassign, when true, makes SetDeparture/SetArrival with the
	// link's current endpoint a successful no-op instead of ErrSameEndpoint.
	IdempotentReassign bool
}

// DefaultOptions returns the strict policy: same-endpoint reassignment is
// rejected.
func DefaultOptions() Options {
	return Options{IdempotentReassign: false}
}

// WithIdempotentReassign returns an Option that accepts same-endpoint
// reassignment as a no-op.
func WithIdempotentReassign() Option {
	return func(o *Options) {
		o.IdempotentReassign = true
	}
}
