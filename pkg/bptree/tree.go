package bptree

import (
	"time"

	"github.com/ssargent/bptreedb/pkg/record"
)

// Tree is the B+Tree handle: the fan-out, the node arena, the root,
// and the hooks a caller installed. The zero value is not usable;
// construct one with New.
type Tree struct {
	order   int
	root    nodeID
	nodes   []*node
	free    []nodeID
	release record.ReleaseHook
	rec     Recorder
}

// New creates an empty tree with the given fan-out. order == 0 uses
// DefaultOrder. Returns an error if order falls outside
// [MinOrder, MaxOrder].
func New(order int) (*Tree, error) {
	if order == 0 {
		order = DefaultOrder
	}
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	return &Tree{order: order, root: noNode, rec: noopRecorder{}}, nil
}

// WithReleaseHook installs hook, invoked on every Data record removed
// from the tree via Delete or Purge. Passing nil disables the hook.
func (t *Tree) WithReleaseHook(hook record.ReleaseHook) *Tree {
	t.release = hook
	return t
}

// WithRecorder installs rec as the tree's operation observer. Passing
// nil restores the no-op recorder.
func (t *Tree) WithRecorder(rec Recorder) *Tree {
	if rec == nil {
		rec = noopRecorder{}
	}
	t.rec = rec
	return t
}

// Order returns the tree's configured fan-out.
func (t *Tree) Order() int { return t.order }

// SetOrder reconfigures the tree's fan-out. It succeeds only while the
// tree is empty; against a non-empty tree it is a silent no-op
// (matching the source's behavior), returning nil. An out-of-range
// order is always rejected, empty or not.
func (t *Tree) SetOrder(order int) error {
	if err := validateOrder(order); err != nil {
		return err
	}
	if t.root != noNode {
		return nil
	}
	t.order = order
	return nil
}

// Height reports the number of internal-node hops from root to any
// leaf. An empty tree has height 0, as does a tree with a single leaf
// root.
func (t *Tree) Height() int {
	if t.root == noNode {
		return 0
	}
	h := 0
	cur := t.root
	for !t.nodes[cur].isLeaf {
		cur = t.nodes[cur].children[0]
		h++
	}
	return h
}

// Count returns the total number of keys currently stored, computed
// by walking the forward-leaf chain.
func (t *Tree) Count() int {
	if t.root == noNode {
		return 0
	}
	cur := t.leftmostLeaf()
	n := 0
	for cur != noNode {
		leaf := t.nodes[cur]
		n += len(leaf.keys)
		cur = leaf.next
	}
	return n
}

// Purge empties the tree, invoking the release hook for every Data
// record it frees (unlike the source, which only did this on the
// Delete path — see design note on purge/delete parity).
func (t *Tree) Purge() {
	start := time.Now()
	defer t.observe("purge", start)

	if t.root != noNode {
		t.releaseSubtree(t.root)
	}
	t.nodes = t.nodes[:0]
	t.free = t.free[:0]
	t.root = noNode
	t.rec.SetHeight(0)
	t.rec.SetCount(0)
}

func (t *Tree) releaseSubtree(id nodeID) {
	n := t.nodes[id]
	if n.isLeaf {
		for _, r := range n.records {
			record.Release(r, t.release)
		}
		return
	}
	for _, c := range n.children {
		t.releaseSubtree(c)
	}
}

func (t *Tree) leftmostLeaf() nodeID {
	cur := t.root
	for cur != noNode && !t.nodes[cur].isLeaf {
		cur = t.nodes[cur].children[0]
	}
	return cur
}

func (t *Tree) minKeys(isLeaf bool) int {
	if isLeaf {
		return cut(t.order - 1)
	}
	return cut(t.order) - 1
}

func (t *Tree) allocLeaf() nodeID {
	return t.alloc(&node{isLeaf: true, parent: noNode, next: noNode})
}

func (t *Tree) allocInternal() nodeID {
	return t.alloc(&node{isLeaf: false, parent: noNode})
}

func (t *Tree) alloc(n *node) nodeID {
	if len(t.free) > 0 {
		id := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return nodeID(len(t.nodes) - 1)
}

func (t *Tree) freeNode(id nodeID) {
	t.nodes[id] = nil
	t.free = append(t.free, id)
}

// childIndex returns the position of child within parent's pointer
// array. Not finding it is a structural-invariant violation: every
// non-root node's parent back-link must point to a node that actually
// contains it (I4).
func (t *Tree) childIndex(parent *node, child nodeID) int {
	for i, c := range parent.children {
		if c == child {
			return i
		}
	}
	structuralPanic("bptree: node %d not found in parent's pointer array", child)
	return -1
}
