// Package traverse provides tunable options and error definitions for the
// walks over a tree.Tree.
package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrTreeNil is returned if a nil tree pointer is passed.
	ErrTreeNil = errors.New("traverse: tree is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrNilPredicate is returned when Find is given a nil predicate.
	ErrNilPredicate = errors.New("traverse: predicate is nil")

	// ErrNilTransform is returned when Map or Fold is given a nil function.
	ErrNilTransform = errors.New("traverse: transform is nil")
)

// Option configures a walk via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the walk is invoked.
type Option[T any] func(*Options[T])

// Options holds parameters and callbacks to customize a walk.
type Options[T any] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node's value is emitted. If it returns an
	// error, the walk aborts and propagates that error.
	// Depth counts the root as 1.
	OnVisit func(value T, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook
//   - error channel clear.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Ctx:      context.Background(),
		OnVisit:  func(T, int) error { return nil },
		MaxDepth: 0,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T any](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run at each emitted value; returning
// an error from this callback stops the walk.
func WithOnVisit[T any](fn func(value T, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk below the given depth.
//
//	d > 0: visit only nodes at depth <= d (root is depth 1)
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T any](d int) Option[T] {
	return func(o *Options[T]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// buildOptions applies opts over the defaults and surfaces any option
// violation recorded along the way.
func buildOptions[T any](opts []Option[T]) (Options[T], error) {
	o := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
