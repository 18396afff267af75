// Package walk implements traversal over tree.Store hierarchies: depth-first
// (pre-order, composite before children) and breadth-first (level order).
// It supports pre- and post-order hooks, depth limits, child filtering, and
// basic diagnostics.
//
// Key features:
//   - DepthFirst(st, root, opts...): visit every descendant of root exactly
//     once, owner before children, in the order exposed by Children
//   - BreadthFirst(st, root, opts...): the same coverage, level by level
//   - Hooks: OnVisit (pre-order) and, for DepthFirst, OnExit (post-order),
//     with error aborts
//   - Limits: MaxDepth, Filter, SkippedChildren diagnostic count
//
// Every walk is a bounded, terminating computation: the hierarchy is finite
// and acyclic by store invariant, so there is no cancellation concept.
//
// Complexity:
//
//   - Time:   O(n) over the visited subtree, plus hook and filter overhead.
//   - Memory: O(depth) recursion for DepthFirst, O(width) queue for BreadthFirst.
//
// Options:
//
//   - WithOnVisit(fn)  pre-order hook on node discovery; error aborts the walk.
//   - WithOnExit(fn)   post-order hook after a node's descendants (DepthFirst only).
//   - WithMaxDepth(d)  stops descending beyond depth d (>= 0); -1 means no limit.
//   - WithFilter(fn)   filters children; return false to skip a subtree.
//
// Errors:
//
//   - ErrStoreNil      if st is nil.
//   - ErrRootNotFound  if root is not a live node of st.
//   - any error returned by OnVisit or OnExit, wrapped with the node handle.
package walk
