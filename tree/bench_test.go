package tree_test

import (
	"testing"

	"github.com/katalvlaran/lvltree/tree"
)

// wideTree builds a root with n leaf children.
func wideTree(b *testing.B, n int) *tree.Tree[int] {
	b.Helper()
	root, err := tree.New(0)
	if err != nil {
		b.Fatal(err)
	}
	for i := 1; i <= n; i++ {
		if root, err = root.AddChild(i); err != nil {
			b.Fatal(err)
		}
	}

	return root
}

// chainTree builds a root-to-leaf chain of depth n.
func chainTree(b *testing.B, n int) *tree.Tree[int] {
	b.Helper()
	node, err := tree.New(n)
	if err != nil {
		b.Fatal(err)
	}
	for i := n - 1; i >= 1; i-- {
		parent, err := tree.New(i)
		if err != nil {
			b.Fatal(err)
		}
		if node, err = parent.AddSubtree(node); err != nil {
			b.Fatal(err)
		}
	}

	return node
}

// BenchmarkAddChild measures appending one leaf to a 1000-wide node
// (one O(k) child-sequence copy per op).
func BenchmarkAddChild(b *testing.B) {
	root := wideTree(b, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = root.AddChild(i)
	}
}

// BenchmarkRemoveChild measures dropping the middle child of a 1000-wide node.
func BenchmarkRemoveChild(b *testing.B) {
	root := wideTree(b, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = root.RemoveChild(500)
	}
}

// BenchmarkSize measures the size recurrence on a deep chain.
func BenchmarkSize(b *testing.B) {
	root := chainTree(b, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if root.Size() != 1000 {
			b.Fatal("wrong size")
		}
	}
}

// BenchmarkValidate measures the full shape check on a wide node.
func BenchmarkValidate(b *testing.B) {
	root := wideTree(b, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := root.Validate(); err != nil {
			b.Fatal(err)
		}
	}
}
