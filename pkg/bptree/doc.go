// Package bptree implements an in-memory B+Tree keyed by signed
// 32-bit integers, mapping each key to a *record.Record.
//
// # Shape
//
// Every node, leaf or internal, lives in a slab owned by the Tree and
// addressed by a nodeID rather than a pointer. parent and the
// forward-leaf link are plain nodeIDs (a sentinel noNode stands in
// for null); a node freed by coalesce or root collapse is returned to
// a free list and its slot reused by a later split, while Purge
// discards the whole arena and its free list. This
// is the "arena + NodeId" shape recommended for a B+Tree implemented
// in a language with ownership discipline: children are owned
// exclusively by their parent's pointer array, and the back-link is a
// non-owning reference into the same arena. Leaf and internal nodes
// carry disjoint fields instead of one overloaded pointer array, so
// there is no "is this slot a child or a record" ambiguity to get
// wrong.
//
// # Concurrency
//
// A Tree is not safe for concurrent use. Every public method must run
// to completion before another is called on the same Tree; there is
// no internal locking. Callers that need to share a Tree across
// goroutines must serialize access themselves (see pkg/registry for
// one way to do that at the granularity of a whole tree).
//
// # Order
//
// order is the tree's fan-out: at most order-1 keys and order
// pointers per node. It is fixed once a tree holds any keys; SetOrder
// only succeeds against an empty tree. Valid orders are [MinOrder,
// MaxOrder].
package bptree
