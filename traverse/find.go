package traverse

import "github.com/katalvlaran/lvltree/tree"

// Predicate reports whether a node matches. It must be total and
// side-effect-free; it receives the node itself so it can inspect both the
// value and the shape beneath it.
type Predicate[T any] func(*tree.Tree[T]) bool

// Find performs a depth-first, pre-order-consistent search: it returns t
// itself when match(t) holds, otherwise the first match found in any child
// subtree, children searched left-to-right. The search short-circuits on
// the first match and does not continue into later siblings.
//
// No match is NOT an error: Find returns (nil, nil).
// Returns ErrTreeNil for a nil tree, ErrNilPredicate for a nil predicate,
// ErrOptionViolation for bad options, or a context error on cancellation.
func Find[T any](t *tree.Tree[T], match Predicate[T], opts ...Option[T]) (*tree.Tree[T], error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	if match == nil {
		return nil, ErrNilPredicate
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return find(&o, t, match, 1)
}

// find recurses in pre-order, returning the first match or (nil, nil).
func find[T any](o *Options[T], t *tree.Tree[T], match Predicate[T], depth int) (*tree.Tree[T], error) {
	select {
	case <-o.Ctx.Done():
		return nil, o.Ctx.Err()
	default:
	}

	if o.MaxDepth > 0 && depth > o.MaxDepth {
		return nil, nil
	}
	if match(t) {
		return t, nil
	}
	for i := 0; i < t.Len(); i++ {
		c, _ := t.ChildAt(i)
		found, err := find(o, c, match, depth+1)
		if err != nil || found != nil {
			return found, err
		}
	}

	return nil, nil
}
