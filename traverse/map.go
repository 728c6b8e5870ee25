package traverse

import "github.com/katalvlaran/lvltree/tree"

// Map returns a fresh tree of identical shape where every node's value is
// replaced by fn(value); children are mapped recursively in original
// order. The result shares no node with the input, so later operations on
// either tree cannot affect the other.
//
// fn must be total and side-effect-free. Map rebuilds through the cheap
// shallow constructor rather than the deep validation path: its output
// nodes are fresh and pairwise disjoint by construction.
// Returns ErrTreeNil for a nil tree or ErrNilTransform for a nil fn.
func Map[T, U any](t *tree.Tree[T], fn func(T) U) (*tree.Tree[U], error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	if fn == nil {
		return nil, ErrNilTransform
	}

	return mapNode(t, fn)
}

// mapNode rebuilds the subtree at t bottom-up.
func mapNode[T, U any](t *tree.Tree[T], fn func(T) U) (*tree.Tree[U], error) {
	kids := make([]*tree.Tree[U], t.Len())
	for i := 0; i < t.Len(); i++ {
		c, _ := t.ChildAt(i)
		mc, err := mapNode(c, fn)
		if err != nil {
			return nil, err
		}
		kids[i] = mc
	}

	return tree.NewNode(fn(t.Value()), kids...)
}

// Fold accumulates fn over every value of t in pre-order:
// acc = fn(acc, value), starting from seed. A subtree total, for example,
// is Fold(t, 0, func(acc, v int) int { return acc + v }).
// Returns ErrTreeNil for a nil tree or ErrNilTransform for a nil fn.
func Fold[T, A any](t *tree.Tree[T], seed A, fn func(A, T) A) (A, error) {
	if t == nil {
		return seed, ErrTreeNil
	}
	if fn == nil {
		return seed, ErrNilTransform
	}

	return foldNode(t, seed, fn), nil
}

// foldNode threads acc through the subtree at t in pre-order.
func foldNode[T, A any](t *tree.Tree[T], acc A, fn func(A, T) A) A {
	acc = fn(acc, t.Value())
	for i := 0; i < t.Len(); i++ {
		c, _ := t.ChildAt(i)
		acc = foldNode(c, acc, fn)
	}

	return acc
}
