package walk

import (
	"fmt"

	"github.com/katalvlaran/entwine/tree"
)

// BreadthFirst visits every descendant of root exactly once in level order:
// the root, then all children, then all grandchildren, siblings in the order
// exposed by tree.Children. OnExit is ignored; every other option applies.
func BreadthFirst(st *tree.Store, root tree.Node, opts ...Option) (*Result, error) {
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

	// 3. Initialize the result collector and the frontier queue.
	res := &Result{
		Order:  make([]tree.Node, 0),
		Depth:  make(map[tree.Node]int),
		Parent: make(map[tree.Node]tree.Node),
	}
	type item struct {
		n     tree.Node
		depth int
	}
	queue := []item{{n: root, depth: 0}}

	// 4. Drain the queue level by level.
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// Depth limit: nodes beyond the cap are never enqueued, so this
		// check only guards the root itself.
		if wopts.MaxDepth >= 0 && cur.depth > wopts.MaxDepth {
			continue
		}

		res.Order = append(res.Order, cur.n)
		res.Depth[cur.n] = cur.depth

		if wopts.OnVisit != nil {
			if err := wopts.OnVisit(cur.n); err != nil {
				return res, fmt.Errorf("walk: OnVisit hook for %v: %w", cur.n, err)
			}
		}

		kind, err := st.Kind(cur.n)
		if err != nil {
			return res, fmt.Errorf("walk: kind of %v: %w", cur.n, err)
		}
		if kind == tree.Leaf {
			continue
		}
		if wopts.MaxDepth >= 0 && cur.depth == wopts.MaxDepth {
			continue
		}
		children, err := st.Children(cur.n)
		if err != nil {
			return res, fmt.Errorf("walk: children of %v: %w", cur.n, err)
		}
		for _, c := range children {
			if wopts.Filter != nil && !wopts.Filter(c) {
				res.SkippedChildren++
				continue
			}
			res.Parent[c] = cur.n
			queue = append(queue, item{n: c, depth: cur.depth + 1})
		}
	}

	return res, nil
}
