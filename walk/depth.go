package walk

import (
	"fmt"

	"github.com/katalvlaran/entwine/tree"
)

// walker encapsulates state during a depth-first walk.
type walker struct {
	st   *tree.Store
	opts Options
	res  *Result

	skipped int
}

// DepthFirst visits every descendant of root exactly once, owner before
// children (pre-order), children in the order exposed by tree.Children.
// Returns the Result or an error when a hook aborts the walk.
//
// The walk reads the store only through its public accessors; it terminates
// because acyclicity and single ownership are store invariants.
func DepthFirst(st *tree.Store, root tree.Node, opts ...Option) (*Result, error) {
	// 1. Validate inputs.
	if st == nil {
		return nil, ErrStoreNil
	}
	if !st.Contains(root) {
		return nil, ErrRootNotFound
	}

	// 2. Apply options.
	wopts := DefaultOptions()
	for _, fn := range opts {
		fn(&wopts)
	}

	// 3. Initialize the result collector.
	res := &Result{
		Order:  make([]tree.Node, 0),
		Depth:  make(map[tree.Node]int),
		Parent: make(map[tree.Node]tree.Node),
	}
	w := &walker{st: st, opts: wopts, res: res}

	// 4. Traverse.
	if err := w.visit(root, 0); err != nil {
		return res, err
	}

	// 5. Expose diagnostics.
	res.SkippedChildren = w.skipped

	return res, nil
}

// visit records node n at the given depth, recursing into its children.
// It honors the depth limit, hooks, and filtering.
func (w *walker) visit(n tree.Node, depth int) error {
	// 1. Depth limit: stop descending beyond the cap.
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 2. Record discovery (pre-order: owner before children).
	w.res.Order = append(w.res.Order, n)
	w.res.Depth[n] = depth

	// 3. Pre-order hook.
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n); err != nil {
			return fmt.Errorf("walk: OnVisit hook for %v: %w", n, err)
		}
	}

	// 4. Descend into composites; leaves have nothing below.
	kind, err := w.st.Kind(n)
	if err != nil {
		return fmt.Errorf("walk: kind of %v: %w", n, err)
	}
	if kind != tree.Leaf {
		children, cerr := w.st.Children(n)
		if cerr != nil {
			return fmt.Errorf("walk: children of %v: %w", n, cerr)
		}
		for _, c := range children {
			if w.opts.Filter != nil && !w.opts.Filter(c) {
				w.skipped++
				continue
			}
			w.res.Parent[c] = n
			if err = w.visit(c, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook.
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(n); err != nil {
			return fmt.Errorf("walk: OnExit hook for %v: %w", n, err)
		}
	}

	return nil
}
