// Package walk defines types and options for hierarchy traversal, including
// pre-/post-order hooks, depth limiting, child filtering, and diagnostics.
package walk

import (
	"errors"

	"github.com/katalvlaran/entwine/tree"
)

var (
	// ErrStoreNil is returned when a nil *tree.Store is passed to DepthFirst
	// or BreadthFirst.
	ErrStoreNil = errors.New("walk: store is nil")

	// ErrRootNotFound indicates the root handle does not designate a live
	// node of the store.
	ErrRootNotFound = errors.New("walk: root node not found")
)

// Option configures optional behavior of a traversal.
// Use with DepthFirst(st, root, opts...) or BreadthFirst(st, root, opts...).
type Option func(*Options)

// Options holds configurable parameters for a traversal.
// Complexity stays O(n) when hooks and filters are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts the walk with that error.
	OnVisit func(n tree.Node) error

	// OnExit, if non-nil, is invoked after all of a node's descendants have
	// been explored (post-order). DepthFirst only; BreadthFirst ignores it.
	// Returning an error aborts the walk.
	OnExit func(n tree.Node) error

	// MaxDepth, if non-negative, limits descent to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// Filter, if non-nil, is called for each child before descending.
	// Return true to enter the child's subtree, false to skip it.
	Filter func(n tree.Node) bool
}

// DefaultOptions returns an Options struct with:
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No child filtering
func DefaultOptions() Options {
	return Options{
		OnVisit:  nil,
		OnExit:   nil,
		MaxDepth: -1,
		Filter:   nil,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(n tree.Node) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// BreadthFirst ignores it.
func WithOnExit(fn func(n tree.Node) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits descent to limit.
// A limit of 0 means only the root is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilter returns an Option that filters children. If fn(child) == false,
// the child's whole subtree is skipped and counted in SkippedChildren.
func WithFilter(fn func(n tree.Node) bool) Option {
	return func(o *Options) {
		o.Filter = fn
	}
}

// Result captures the outcome of a traversal.
type Result struct {
	// Order records nodes in visit order: pre-order for DepthFirst, level
	// order for BreadthFirst.
	Order []tree.Node

	// Depth maps each visited node to its distance (#links) from the root.
	Depth map[tree.Node]int

	// Parent maps each visited node to the composite it was discovered under.
	// The root does not appear in this map.
	Parent map[tree.Node]tree.Node

	// SkippedChildren reports how many children were skipped due to Filter
	// returning false.
	SkippedChildren int
}
