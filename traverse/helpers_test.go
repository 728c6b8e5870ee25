package traverse_test

import (
	"testing"

	"github.com/katalvlaran/lvltree/tree"
)

// flatTree builds the reference scenario: root 1 with ordered leaf
// children 2, 3, 4, 5, 6 appended one by one onto the same root.
func flatTree(tb testing.TB) *tree.Tree[int] {
	tb.Helper()
	root, err := tree.New(1)
	if err != nil {
		tb.Fatalf("New: %v", err)
	}
	for _, v := range []int{2, 3, 4, 5, 6} {
		if root, err = root.AddChild(v); err != nil {
			tb.Fatalf("AddChild(%d): %v", v, err)
		}
	}

	return root
}

// nestedTree builds a three-level tree:
//
//	      1
//	    ┌─┴─┐
//	    2   3
//	   ┌┴┐
//	   4 5
func nestedTree(tb testing.TB) *tree.Tree[int] {
	tb.Helper()
	left, err := tree.New(2)
	if err != nil {
		tb.Fatalf("New: %v", err)
	}
	for _, v := range []int{4, 5} {
		if left, err = left.AddChild(v); err != nil {
			tb.Fatalf("AddChild(%d): %v", v, err)
		}
	}
	root, err := tree.New(1)
	if err != nil {
		tb.Fatalf("New: %v", err)
	}
	if root, err = root.AddSubtree(left); err != nil {
		tb.Fatalf("AddSubtree: %v", err)
	}
	if root, err = root.AddChild(3); err != nil {
		tb.Fatalf("AddChild(3): %v", err)
	}

	return root
}

// chain builds a root-to-leaf chain 1 → 2 → ... → n.
func chain(tb testing.TB, n int) *tree.Tree[int] {
	tb.Helper()
	node, err := tree.New(n)
	if err != nil {
		tb.Fatalf("New: %v", err)
	}
	for v := n - 1; v >= 1; v-- {
		parent, err := tree.New(v)
		if err != nil {
			tb.Fatalf("New: %v", err)
		}
		if node, err = parent.AddSubtree(node); err != nil {
			tb.Fatalf("AddSubtree: %v", err)
		}
	}

	return node
}
