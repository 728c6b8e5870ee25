package tree

import "fmt"

// Tree is a persistent rooted tree node: one payload value plus an ordered
// sequence of child subtrees.
//
// Both fields are unexported: the only way to obtain a Tree is through the
// exported constructors and mutators, which is what keeps the shape
// invariant enforceable. A Tree value is never modified after it has been
// returned; every mutator builds a fresh node and shares untouched subtrees.
type Tree[T any] struct {
	value    T
	children []*Tree[T]
}

// New builds a single-node tree (a leaf) holding value.
// Returns ErrInvalidStructure if the freshly built node fails the shape
// check — defensive only, not reachable through this constructor.
func New[T any](value T) (*Tree[T], error) {
	t := &Tree[T]{value: value}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// NewNode builds a node holding value with the given subtrees as its
// ordered children. Each child must be non-nil and must not repeat an
// earlier child; violations return ErrInvalidChild and no node.
//
// The check is shallow by design: callers handing over freshly built,
// disjoint subtrees (as Map does) pay O(len(children)), not O(n).
// Deep aliasing across distinct children is caught by Validate.
func NewNode[T any](value T, children ...*Tree[T]) (*Tree[T], error) {
	kids := make([]*Tree[T], len(children))
	seen := make(map[*Tree[T]]int, len(children))
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("%w: nil child at index %d", ErrInvalidChild, i)
		}
		if j, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: child at index %d repeats child at index %d (value %v)", ErrInvalidChild, i, j, c.value)
		}
		seen[c] = i
		kids[i] = c
	}

	return &Tree[T]{value: value, children: kids}, nil
}

// Value returns the payload held by this node.
func (t *Tree[T]) Value() T { return t.value }

// Len returns the number of direct children.
func (t *Tree[T]) Len() int { return len(t.children) }

// ChildAt returns the child at index i, or ok == false when i is out of
// range. Never fails.
func (t *Tree[T]) ChildAt(i int) (*Tree[T], bool) {
	if i < 0 || i >= len(t.children) {
		return nil, false
	}

	return t.children[i], true
}

// Children returns a copy of the child sequence. Mutating the returned
// slice does not affect t.
func (t *Tree[T]) Children() []*Tree[T] {
	kids := make([]*Tree[T], len(t.children))
	copy(kids, t.children)

	return kids
}

// AddChild builds a new leaf from value, validates it, and returns a new
// parent with the leaf appended after all existing children. The receiver
// is unchanged. Returns ErrInvalidChild if the leaf fails the shape check
// (defensive; a fresh leaf always validates).
func (t *Tree[T]) AddChild(value T) (*Tree[T], error) {
	leaf := &Tree[T]{value: value}
	if err := leaf.Validate(); err != nil {
		return nil, fmt.Errorf("%w: value %v: %v", ErrInvalidChild, value, err)
	}

	return t.graft(leaf), nil
}

// AddSubtree validates child and returns a new parent with child appended
// after all existing children. The receiver is unchanged.
//
// Returns ErrInvalidChild when child is nil, malformed, or aliases a node
// already reachable from t — grafting such a subtree would make a node
// reachable twice in the result.
func (t *Tree[T]) AddSubtree(child *Tree[T]) (*Tree[T], error) {
	seen := make(map[*Tree[T]]struct{})
	if err := validate(child, seen, "child"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChild, err)
	}
	// Every node of child is now in seen; a second sweep over t trips the
	// reachable-twice check on any shared node.
	if err := validate(t, seen, "parent"); err != nil {
		return nil, fmt.Errorf("%w: subtree shares a node with the parent: %v", ErrInvalidChild, err)
	}

	return t.graft(child), nil
}

// RemoveChild returns a new parent whose child sequence omits the entry at
// index i, preserving the relative order of all other children.
//
// An out-of-range i (negative or >= Len) is a deliberate no-op: the
// receiver itself is returned unchanged, not an error.
func (t *Tree[T]) RemoveChild(i int) *Tree[T] {
	if i < 0 || i >= len(t.children) {
		return t
	}
	kids := make([]*Tree[T], 0, len(t.children)-1)
	kids = append(kids, t.children[:i]...)
	kids = append(kids, t.children[i+1:]...)

	return &Tree[T]{value: t.value, children: kids}
}

// UpdateValue returns a new node holding value with the receiver's child
// sequence, after validating the whole replacement node. The receiver is
// unaffected. Returns ErrInvalidValue if the replacement fails the shape
// check.
func (t *Tree[T]) UpdateValue(value T) (*Tree[T], error) {
	next := &Tree[T]{value: value, children: t.children}
	if err := next.Validate(); err != nil {
		return nil, fmt.Errorf("%w: value %v: %v", ErrInvalidValue, value, err)
	}

	return next, nil
}

// Depth returns the number of nodes on the longest root-to-leaf path:
// 1 for a leaf, otherwise 1 + the maximum child depth. Always >= 1.
func (t *Tree[T]) Depth() int {
	deepest := 0
	for _, c := range t.children {
		if d := c.Depth(); d > deepest {
			deepest = d
		}
	}

	return deepest + 1
}

// Size returns the total node count: the node itself plus all descendants.
func (t *Tree[T]) Size() int {
	n := 1
	for _, c := range t.children {
		n += c.Size()
	}

	return n
}

// Equal reports whether a and b hold the same values in the same shape.
func Equal[T comparable](a, b *Tree[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.value != b.value || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}

	return true
}

// graft appends child to a copy of t's child sequence. The copy keeps the
// backing array of the new node disjoint from the receiver's, so no append
// ever writes through a published slice.
func (t *Tree[T]) graft(child *Tree[T]) *Tree[T] {
	kids := make([]*Tree[T], len(t.children), len(t.children)+1)
	copy(kids, t.children)
	kids = append(kids, child)

	return &Tree[T]{value: t.value, children: kids}
}
