package traverse_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvltree/traverse"
)

// TestBreadthFirst_Flat covers the reference scenario.
func TestBreadthFirst_Flat(t *testing.T) {
	got, err := traverse.BreadthFirst(flatTree(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{1, 2, 3, 4, 5, 6}; !reflect.DeepEqual(got, want) {
		t.Errorf("BreadthFirst = %v; want %v", got, want)
	}
}

// TestBreadthFirst_Nested verifies level order on a three-level tree.
func TestBreadthFirst_Nested(t *testing.T) {
	got, err := traverse.BreadthFirst(nestedTree(t))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("BreadthFirst = %v; want %v", got, want)
	}
}

// TestBreadthFirst_LevelOrdering: the hook must observe non-decreasing
// depths — every node at depth d is visited before any node at depth d+1.
func TestBreadthFirst_LevelOrdering(t *testing.T) {
	var depths []int
	_, err := traverse.BreadthFirst(nestedTree(t), traverse.WithOnVisit(func(_, d int) error {
		depths = append(depths, d)

		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(depths); i++ {
		if depths[i] < depths[i-1] {
			t.Fatalf("depth sequence %v decreases at index %d", depths, i)
		}
	}
	if want := []int{1, 2, 2, 3, 3}; !reflect.DeepEqual(depths, want) {
		t.Errorf("depth sequence = %v; want %v", depths, want)
	}
}

// TestBreadthFirst_MaxDepth cuts the frontier below the limit.
func TestBreadthFirst_MaxDepth(t *testing.T) {
	root := nestedTree(t)
	if got, _ := traverse.BreadthFirst(root, traverse.WithMaxDepth[int](1)); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("MaxDepth=1: got %v; want [1]", got)
	}
	if got, _ := traverse.BreadthFirst(root, traverse.WithMaxDepth[int](2)); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("MaxDepth=2: got %v; want [1 2 3]", got)
	}
}

// TestBreadthFirst_Errors verifies input, option, hook, and context failures.
func TestBreadthFirst_Errors(t *testing.T) {
	if _, err := traverse.BreadthFirst[int](nil); !errors.Is(err, traverse.ErrTreeNil) {
		t.Errorf("nil tree: want ErrTreeNil, got %v", err)
	}
	root := flatTree(t)
	if _, err := traverse.BreadthFirst(root, traverse.WithMaxDepth[int](-3)); !errors.Is(err, traverse.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}

	boom := errors.New("boom")
	_, err := traverse.BreadthFirst(root, traverse.WithOnVisit(func(v, _ int) error {
		if v == 3 {
			return boom
		}

		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("hook abort: want wrapped boom, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = traverse.BreadthFirst(root, traverse.WithContext[int](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation: want context.Canceled, got %v", err)
	}
}
