package tree

import "errors"

var (
	// ErrInvalidStructure indicates a node failed the shape check:
	// nil node, nil child entry, or a node reachable twice.
	ErrInvalidStructure = errors.New("tree: invalid structure")
	// ErrInvalidChild indicates a prospective child failed the shape check;
	// the parent is returned unchanged.
	ErrInvalidChild = errors.New("tree: invalid child")
	// ErrInvalidValue indicates a value replacement failed the shape check;
	// the original node is unaffected.
	ErrInvalidValue = errors.New("tree: invalid value")
)
