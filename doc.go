// Package lvltree is your in-memory playground for building, reshaping,
// and walking immutable rooted trees — from the core persistent node type
// to traversal, search, and transformation algorithms.
//
// 🚀 What is lvltree?
//
//	A small, dependency-free library built around one idea: a tree value
//	is never modified in place. Every "mutation" returns a new tree that
//	shares all untouched subtrees with its ancestor:
//		• Core primitives: create nodes, append/remove children, replace values
//		• Validation: every boundary that could break the shape rejects bad input
//		• Traversals: pre-order, post-order, breadth-first
//		• Search: first match in pre-order, with hooks and depth limits
//		• Transform: shape-preserving Map, pre-order Fold
//
// ✨ Why choose lvltree?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Persistent by construction – old references stay valid forever
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – add custom hooks (OnVisit, MaxDepth…) for custom logic
//
// Everything is organized under two subpackages:
//
//	tree/     — the persistent Tree type: constructors, mutators, accessors
//	traverse/ — pre/post/breadth-first walks, Find, Map, Fold
//
// Quick ASCII example:
//
//	      1
//	    ┌─┼─┐
//	    2 3 4
//
//	a root with three ordered children, built by three AddChild calls.
//
// Dive into the examples/ directory for full scenarios.
//
//	go get github.com/katalvlaran/lvltree
package lvltree
