package traverse

import (
	"fmt"

	"github.com/katalvlaran/lvltree/tree"
)

// walker encapsulates mutable state shared by the depth-first orders.
type walker[T any] struct {
	opts Options[T]
	out  []T
}

// PreOrder visits the node's value, then recursively the pre-order
// sequence of each child in order, applying any number of functional
// Options. Without a depth limit the result has length tree.Size(t).
// Returns ErrTreeNil for a nil tree, ErrOptionViolation for bad options,
// a context error on cancellation, or any user-supplied hook error.
func PreOrder[T any](t *tree.Tree[T], opts ...Option[T]) ([]T, error) {
	w, err := newWalker(t, opts)
	if err != nil {
		return nil, err
	}
	if err = w.pre(t, 1); err != nil {
		return nil, err
	}

	return w.out, nil
}

// PostOrder visits recursively the post-order sequence of each child in
// order, then the node's own value, appended last. Options and errors as
// for PreOrder.
func PostOrder[T any](t *tree.Tree[T], opts ...Option[T]) ([]T, error) {
	w, err := newWalker(t, opts)
	if err != nil {
		return nil, err
	}
	if err = w.post(t, 1); err != nil {
		return nil, err
	}

	return w.out, nil
}

// newWalker validates the root, builds options, and sizes the output.
func newWalker[T any](t *tree.Tree[T], opts []Option[T]) (*walker[T], error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &walker[T]{opts: o, out: make([]T, 0, t.Size())}, nil
}

// pre emits t's value, then descends into each child left-to-right.
func (w *walker[T]) pre(t *tree.Tree[T], depth int) error {
	// cancellation check (once per node)
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
		return nil
	}
	if err := w.visit(t.Value(), depth); err != nil {
		return err
	}
	for i := 0; i < t.Len(); i++ {
		c, _ := t.ChildAt(i)
		if err := w.pre(c, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// post descends into each child left-to-right, then emits t's value.
func (w *walker[T]) post(t *tree.Tree[T], depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
		return nil
	}
	for i := 0; i < t.Len(); i++ {
		c, _ := t.ChildAt(i)
		if err := w.post(c, depth+1); err != nil {
			return err
		}
	}

	return w.visit(t.Value(), depth)
}

// visit runs the OnVisit hook, then records the value.
func (w *walker[T]) visit(v T, depth int) error {
	if err := w.opts.OnVisit(v, depth); err != nil {
		return fmt.Errorf("traverse: OnVisit error at depth %d: %w", depth, err)
	}
	w.out = append(w.out, v)

	return nil
}
