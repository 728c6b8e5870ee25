package tree

import (
	"fmt"
	"strconv"
)

// Validate runs the shape check over the whole tree rooted at t:
// every node must be non-nil, every child entry must be recursively valid,
// and no node may be reachable twice (so no node is its own descendant).
//
// Trees built exclusively through this package's constructors and mutators
// always validate; the check exists for the mutation boundaries and for
// callers that want to assert the invariant explicitly.
// Returns ErrInvalidStructure with a path diagnostic on the first
// violation found. Complexity: O(Size(t)).
func (t *Tree[T]) Validate() error {
	return validate(t, make(map[*Tree[T]]struct{}), "root")
}

// validate walks the subtree at t, recording every visited node in seen.
// path names the position of t for diagnostics ("root/2/0" is the first
// child of the third child of the root).
func validate[T any](t *Tree[T], seen map[*Tree[T]]struct{}, path string) error {
	if t == nil {
		return fmt.Errorf("%w: nil node at %s", ErrInvalidStructure, path)
	}
	if _, dup := seen[t]; dup {
		return fmt.Errorf("%w: node %v at %s is reachable twice", ErrInvalidStructure, t.value, path)
	}
	seen[t] = struct{}{}

	for i, c := range t.children {
		if err := validate(c, seen, path+"/"+strconv.Itoa(i)); err != nil {
			return err
		}
	}

	return nil
}
