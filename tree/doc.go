// Package tree provides a persistent, validated, ordered-children rooted
// tree with structural mutators that never modify a published node.
//
// What
//
//   - Tree[T] is a rooted tree node: one payload value plus an ordered
//     sequence of child subtrees (duplicates and repeated values allowed).
//   - Every mutator (AddChild, AddSubtree, RemoveChild, UpdateValue)
//     returns a NEW tree value; the receiver is never written in place.
//     Untouched subtrees are shared between the old and new value.
//   - Every boundary that could introduce a malformed shape validates it
//     first: a mutator either returns a complete valid tree or an error,
//     never a partially mutated one.
//   - Read operations (Value, ChildAt, Depth, Size, ...) trust their input
//     and perform no validation.
//
// Why
//
//   - Persistence makes sharing safe: independent callers may hold tree
//     values derived from a common ancestor and traverse them without any
//     locking, because no operation ever writes through a shared node.
//   - Validation at the mutation boundary keeps the hot read/traversal
//     paths branch- and allocation-light while still guaranteeing that any
//     tree value circulating through the API is well-formed.
//
// Shape
//
//	A valid tree is finite, acyclic, and rooted: every child entry is a
//	non-nil, recursively valid tree, and no node is reachable twice (in
//	particular, no node is its own descendant). An empty child sequence
//	marks a leaf.
//
// Complexity (n = Size(t), k = child count of the mutated node)
//
//   - AddChild, RemoveChild, UpdateValue: O(k) copy of one child sequence.
//   - AddSubtree: O(n) for the aliasing check.
//   - Depth, Size, Validate: O(n).
//
// Usage
//
//	root, _ := tree.New(1)
//	root, _ = root.AddChild(2)
//	root, _ = root.AddChild(3)
//	two, ok := root.ChildAt(0) // leaf 2, ok == true
//
// Errors
//
//   - ErrInvalidStructure  a node fails the shape check (nil node, nil
//     child entry, or a node reachable twice).
//   - ErrInvalidChild      the child handed to AddChild/AddSubtree/NewNode
//     fails the shape check; the parent is unchanged.
//   - ErrInvalidValue      the replacement node built by UpdateValue fails
//     the shape check; the original node is unaffected.
//
// Out-of-range RemoveChild and ChildAt are NOT errors: RemoveChild is a
// documented no-op returning the receiver, ChildAt reports ok == false.
package tree
