// Package entwine is an in-memory toolkit for entity graphs whose links
// must stay consistent in both directions — parent/child trees, symmetric
// pairings, and dual-endpoint associations.
//
// 🚀 What is entwine?
//
//	A small, deterministic library that brings together:
//		• arena/   — generational slot arena: stable handles instead of pointers
//		• tree/    — composite/leaf hierarchies (ordered and name-keyed), with
//		             cycle guards and an ancestor iterator
//		• pairing/ — symmetric "paired-with" links, both sides set and cleared together
//		• duplex/  — one-to-many links between two endpoint roles, kept mutually consistent
//		• walk/    — depth-first and breadth-first traversal with hooks and limits
//		• flatten/ — export a subtree to plain maps/slices/scalars, rebuild it, or
//		             marshal it to YAML
//
// ✨ Why choose entwine?
//
//   - Invariants first — back-reference symmetry, acyclicity, and single
//     ownership hold after every public call, or the call fails without
//     touching anything
//   - No representation exposure — every collection you receive is a snapshot;
//     mutate it freely, the store does not notice
//   - Handles, not pointers — cross-references are indices into one owned
//     table, so the logical cycles of a doubly-linked model never become
//     pointer cycles
//   - Pure Go — no cgo, no hidden machinery
//
// Quick ASCII example:
//
//	    paragraph
//	    ├── "hello "
//	    └── bold
//	        └── "world"
//
//	an ordered composite with a leaf and a nested composite child.
//
// Every store is single-threaded by contract: mutations are multi-step
// read-then-write sequences with no internal locking, so concurrent callers
// must serialize access externally.
//
// Dive into the per-package docs and the examples/ directory for full
// walkthroughs of each shape.
//
//	go get github.com/katalvlaran/entwine
package entwine
