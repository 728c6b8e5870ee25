// Package traverse provides the traversal, search, and transformation
// algorithms over a tree.Tree: pre-order, post-order, breadth-first,
// first-match search, shape-preserving Map, and pre-order Fold.
//
// What
//
//   - PreOrder(t): node before its descendants, children left-to-right.
//   - PostOrder(t): descendants before the node, children left-to-right.
//   - BreadthFirst(t): level order via an explicit FIFO frontier seeded
//     with the root; a dequeued node's children join the back in order.
//   - Find(t, pred): depth-first, pre-order-consistent search returning
//     the first matching node, or nil when nothing matches.
//   - Map(t, fn): a fresh tree of identical shape with every value
//     replaced by fn(value); shares nothing with the input.
//   - Fold(t, seed, fn): pre-order accumulation over all values.
//   - Traversals and Find accept functional Options: context cancellation,
//     a depth limit, and an OnVisit hook that may abort with an error.
//
// Why
//
//   - Separating the algorithms from the tree type keeps the core package
//     small and lets every walk share one Option surface, the way a graph
//     core is kept apart from its BFS/DFS packages.
//
// Determinism
//
//	Children are stored and visited in insertion order, so every walk
//	produces a fully reproducible sequence.
//
// Depth convention
//
//	Hooks and WithMaxDepth count the root as depth 1, matching
//	tree.Depth() (a leaf has depth 1, never 0).
//
// Complexity (n = Size(t))
//
//   - Time:   O(n) for every operation (each node visited once).
//   - Memory: O(n) for the result sequence; BreadthFirst also keeps an
//     O(width) frontier, the depth-first walks an O(depth) stack.
//
// Usage
//
//	order, err := traverse.PreOrder(t)
//	order, err = traverse.BreadthFirst(t,
//	    traverse.WithMaxDepth[int](2),
//	    traverse.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//	node, err := traverse.Find(t, func(n *tree.Tree[int]) bool { return n.Value() == 3 })
//	doubled, err := traverse.Map(t, func(v int) int { return v * 2 })
//
// Errors
//
//   - ErrTreeNil          if the tree pointer is nil.
//   - ErrOptionViolation  if an invalid Option is supplied (negative depth).
//   - ErrNilPredicate     if Find is given a nil predicate.
//   - ErrNilTransform     if Map or Fold is given a nil function.
//   - context.Canceled / context.DeadlineExceeded from a done context.
//   - Wrapped user-supplied hook errors from OnVisit.
//
// A Find with no match is NOT an error: it returns (nil, nil). Only shape
// and input violations fail; traversals trust that their input tree is
// valid (every tree built through the tree package is).
package traverse
