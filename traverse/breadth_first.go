package traverse

import (
	"fmt"

	"github.com/katalvlaran/lvltree/tree"
)

// frontierItem pairs a node with its depth from the root (root is 1).
type frontierItem[T any] struct {
	node  *tree.Tree[T]
	depth int
}

// bfsWalker encapsulates mutable breadth-first state.
type bfsWalker[T any] struct {
	opts     Options[T]
	frontier []frontierItem[T]
	out      []T
}

// BreadthFirst performs a level-order walk: an explicit FIFO frontier is
// seeded with the root; at each step the front node's value is emitted and
// its children are appended to the back of the frontier in order, until
// the frontier is empty. All nodes at depth d are therefore visited before
// any node at depth d+1.
// Returns ErrTreeNil for a nil tree, ErrOptionViolation for bad options,
// a context error on cancellation, or any user-supplied hook error.
func BreadthFirst[T any](t *tree.Tree[T], opts ...Option[T]) ([]T, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	n := t.Size()
	w := &bfsWalker[T]{
		opts:     o,
		frontier: make([]frontierItem[T], 0, n),
		out:      make([]T, 0, n),
	}
	// Seed frontier with the root
	w.enqueue(t, 1)
	if err = w.loop(); err != nil {
		return nil, err
	}

	return w.out, nil
}

// enqueue adds node at depth d to the back of the frontier, unless the
// depth limit cuts it off.
func (w *bfsWalker[T]) enqueue(node *tree.Tree[T], d int) {
	if w.opts.MaxDepth > 0 && d > w.opts.MaxDepth {
		return
	}
	w.frontier = append(w.frontier, frontierItem[T]{node: node, depth: d})
}

// dequeue pops the front item.
func (w *bfsWalker[T]) dequeue() frontierItem[T] {
	item := w.frontier[0]
	w.frontier = w.frontier[1:]

	return item
}

// loop processes the frontier until empty, error, or cancellation.
func (w *bfsWalker[T]) loop() error {
	for len(w.frontier) > 0 {
		// cancellation check (once per node)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		for i := 0; i < item.node.Len(); i++ {
			c, _ := item.node.ChildAt(i)
			w.enqueue(c, item.depth+1)
		}
	}

	return nil
}

// visit runs the OnVisit hook, then records the value.
func (w *bfsWalker[T]) visit(item frontierItem[T]) error {
	if err := w.opts.OnVisit(item.node.Value(), item.depth); err != nil {
		return fmt.Errorf("traverse: OnVisit error at depth %d: %w", item.depth, err)
	}
	w.out = append(w.out, item.node.Value())

	return nil
}
