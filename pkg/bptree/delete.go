package bptree

import (
	"time"

	"github.com/ssargent/bptreedb/pkg/record"
)

// Delete removes key if present, releasing its record through the
// tree's release hook exactly as Purge does (the source only ran the
// hook on this path; here both paths run it, so a Data record is
// never silently dropped regardless of which one a caller takes).
// Reports whether key was found.
func (t *Tree) Delete(key int32) bool {
	start := time.Now()
	defer t.observe("delete", start)

	if t.root == noNode {
		return false
	}
	leafID := t.descend(key)
	leaf := t.nodes[leafID]
	idx, found := findKeyIndex(leaf.keys, key)
	if !found {
		return false
	}

	record.Release(leaf.records[idx], t.release)
	leaf.keys = removeInt32At(leaf.keys, idx)
	leaf.records = removeRecordAt(leaf.records, idx)

	t.deleteEntry(leafID)
	return true
}

// deleteEntry rebalances starting at n, which has just lost one key
// (and, if internal, the child that went with it). The caller has
// already performed the removal from n itself.
func (t *Tree) deleteEntry(id nodeID) {
	n := t.nodes[id]

	if id == t.root {
		t.adjustRoot()
		return
	}

	if len(n.keys) >= t.minKeys(n.isLeaf) {
		return
	}

	parentID := n.parent
	parent := t.nodes[parentID]
	idx := t.childIndex(parent, id)

	var neighborIdx int
	if idx == 0 {
		neighborIdx = 1
	} else {
		neighborIdx = idx - 1
	}
	neighborID := parent.children[neighborIdx]
	neighbor := t.nodes[neighborID]

	var kPrimeIdx int
	if idx == 0 {
		kPrimeIdx = 0
	} else {
		kPrimeIdx = idx - 1
	}
	kPrime := parent.keys[kPrimeIdx]

	var capacity int
	if n.isLeaf {
		capacity = t.order
	} else {
		capacity = t.order - 1
	}

	if len(neighbor.keys)+len(n.keys) < capacity {
		if idx == 0 {
			t.coalesce(id, neighborID, parentID, kPrimeIdx)
		} else {
			t.coalesce(neighborID, id, parentID, kPrimeIdx)
		}
		return
	}

	t.redistribute(id, neighborID, parentID, idx, neighborIdx, kPrimeIdx)
}

// coalesce merges right into left (left is the lower-keyed sibling),
// pulling kPrime down from the parent when merging internal nodes,
// then removes the separator and the now-empty right child from the
// parent and recurses on it.
func (t *Tree) coalesce(left, right, parentID nodeID, kPrimeIdx int) {
	l := t.nodes[left]
	r := t.nodes[right]
	parent := t.nodes[parentID]
	kPrime := parent.keys[kPrimeIdx]

	if l.isLeaf {
		l.keys = append(l.keys, r.keys...)
		l.records = append(l.records, r.records...)
		l.next = r.next
	} else {
		l.keys = append(l.keys, kPrime)
		l.keys = append(l.keys, r.keys...)
		l.children = append(l.children, r.children...)
		for _, c := range r.children {
			t.nodes[c].parent = left
		}
	}

	rIdx := t.childIndex(parent, right)
	parent.keys = removeInt32At(parent.keys, kPrimeIdx)
	parent.children = removeNodeIDAt(parent.children, rIdx)

	t.freeNode(right)
	t.deleteEntry(parentID)
}

// redistribute borrows one entry from a sibling that has one to
// spare, shifting the separator in the parent to match, so neither
// sibling drops below its minimum.
func (t *Tree) redistribute(id, neighborID, parentID nodeID, idx, neighborIdx, kPrimeIdx int) {
	n := t.nodes[id]
	neighbor := t.nodes[neighborID]
	parent := t.nodes[parentID]

	if neighborIdx < idx {
		// Borrow from the left neighbor: its last entry becomes n's
		// first.
		if n.isLeaf {
			k := neighbor.keys[len(neighbor.keys)-1]
			r := neighbor.records[len(neighbor.records)-1]
			neighbor.keys = neighbor.keys[:len(neighbor.keys)-1]
			neighbor.records = neighbor.records[:len(neighbor.records)-1]

			n.keys = insertInt32At(n.keys, 0, k)
			n.records = insertRecordAt(n.records, 0, r)
			parent.keys[kPrimeIdx] = k
		} else {
			c := neighbor.children[len(neighbor.children)-1]
			k := neighbor.keys[len(neighbor.keys)-1]
			neighbor.children = neighbor.children[:len(neighbor.children)-1]
			neighbor.keys = neighbor.keys[:len(neighbor.keys)-1]

			n.keys = insertInt32At(n.keys, 0, parent.keys[kPrimeIdx])
			n.children = insertNodeIDAt(n.children, 0, c)
			t.nodes[c].parent = id
			parent.keys[kPrimeIdx] = k
		}
		return
	}

	// Borrow from the right neighbor: its first entry becomes n's
	// last.
	if n.isLeaf {
		k := neighbor.keys[0]
		r := neighbor.records[0]
		neighbor.keys = removeInt32At(neighbor.keys, 0)
		neighbor.records = removeRecordAt(neighbor.records, 0)

		n.keys = append(n.keys, k)
		n.records = append(n.records, r)
		parent.keys[kPrimeIdx] = neighbor.keys[0]
	} else {
		c := neighbor.children[0]
		k := neighbor.keys[0]
		neighbor.children = removeNodeIDAt(neighbor.children, 0)
		neighbor.keys = removeInt32At(neighbor.keys, 0)

		n.keys = append(n.keys, parent.keys[kPrimeIdx])
		n.children = append(n.children, c)
		t.nodes[c].parent = id
		parent.keys[kPrimeIdx] = k
	}
}

// adjustRoot collapses the root after a deletion leaves it with a
// single child (internal) or empty (leaf), maintaining I1/I2.
func (t *Tree) adjustRoot() {
	root := t.nodes[t.root]

	if len(root.keys) > 0 {
		return
	}

	if root.isLeaf {
		t.freeNode(t.root)
		t.root = noNode
		return
	}

	newRoot := root.children[0]
	t.nodes[newRoot].parent = noNode
	t.freeNode(t.root)
	t.root = newRoot
}
