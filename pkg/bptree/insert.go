package bptree

import (
	"time"

	"github.com/ssargent/bptreedb/pkg/record"
)

// Insert stores rec under key. If key is already present, the insert
// is a no-op: the existing record is left in place and rec is never
// admitted, so the release hook is never invoked for it — the caller
// retains ownership of a record rejected as a duplicate.
func (t *Tree) Insert(key int32, rec *record.Record) {
	start := time.Now()
	defer t.observe("insert", start)

	if t.root == noNode {
		root := t.allocLeaf()
		n := t.nodes[root]
		n.keys = append(n.keys, key)
		n.records = append(n.records, rec)
		t.root = root
		return
	}

	leafID := t.descend(key)
	leaf := t.nodes[leafID]
	idx, found := findKeyIndex(leaf.keys, key)
	if found {
		return
	}

	leaf.keys = insertInt32At(leaf.keys, idx, key)
	leaf.records = insertRecordAt(leaf.records, idx, rec)

	if len(leaf.keys) < t.order {
		return
	}
	t.splitLeaf(leafID)
}

// splitLeaf splits an overfull leaf in two and inserts the new leaf's
// first key into the parent as a separator. The left leaf keeps
// cut(order-1) keys; the right keeps the remainder.
func (t *Tree) splitLeaf(leafID nodeID) {
	leaf := t.nodes[leafID]
	split := cut(t.order - 1)

	newID := t.allocLeaf()
	newLeaf := t.nodes[newID]

	newLeaf.keys = append(newLeaf.keys, leaf.keys[split:]...)
	newLeaf.records = append(newLeaf.records, leaf.records[split:]...)
	leaf.keys = leaf.keys[:split:split]
	leaf.records = leaf.records[:split:split]

	newLeaf.next = leaf.next
	leaf.next = newID
	newLeaf.parent = leaf.parent

	kPrime := newLeaf.keys[0]
	t.insertIntoParent(leafID, kPrime, newID)
}

// insertIntoParent inserts a new (key, rightChild) separator into
// leftChild's parent, splitting that parent if it overflows, and
// recursing upward as needed. leftChild and rightChild are siblings;
// rightChild's subtree holds keys >= key.
func (t *Tree) insertIntoParent(leftChild nodeID, key int32, rightChild nodeID) {
	parentID := t.nodes[leftChild].parent

	if parentID == noNode {
		root := t.allocInternal()
		p := t.nodes[root]
		p.keys = append(p.keys, key)
		p.children = append(p.children, leftChild, rightChild)
		t.nodes[leftChild].parent = root
		t.nodes[rightChild].parent = root
		t.root = root
		return
	}

	parent := t.nodes[parentID]
	idx := t.childIndex(parent, leftChild)

	parent.keys = insertInt32At(parent.keys, idx, key)
	parent.children = insertNodeIDAt(parent.children, idx+1, rightChild)
	t.nodes[rightChild].parent = parentID

	if len(parent.children) <= t.order {
		return
	}
	t.splitInternal(parentID)
}

// splitInternal splits an overfull internal node. The separator at
// position cut(order)-1 moves up into the grandparent rather than
// being copied, since internal nodes don't duplicate keys the way
// leaves' forward chain implies.
func (t *Tree) splitInternal(id nodeID) {
	n := t.nodes[id]
	split := cut(t.order)

	kPrime := n.keys[split-1]

	newID := t.allocInternal()
	newNode := t.nodes[newID]

	newNode.keys = append(newNode.keys, n.keys[split:]...)
	newNode.children = append(newNode.children, n.children[split:]...)
	newNode.parent = n.parent

	for _, c := range newNode.children {
		t.nodes[c].parent = newID
	}

	n.keys = n.keys[:split-1:split-1]
	n.children = n.children[:split:split]

	t.insertIntoParent(id, kPrime, newID)
}
