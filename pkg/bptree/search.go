package bptree

import (
	"time"

	"github.com/ssargent/bptreedb/pkg/record"
)

// KeyRecord pairs a key with the record stored under it, returned by
// Range.
type KeyRecord struct {
	Key    int32
	Record *record.Record
}

// descend returns the id of the leaf that would hold key, or noNode if
// the tree is empty. It never returns an internal node.
func (t *Tree) descend(key int32) nodeID {
	cur := t.root
	for cur != noNode && !t.nodes[cur].isLeaf {
		n := t.nodes[cur]
		i := 0
		for i < len(n.keys) && key >= n.keys[i] {
			i++
		}
		cur = n.children[i]
	}
	return cur
}

// Find looks up key and reports whether it is present.
func (t *Tree) Find(key int32) (*record.Record, bool) {
	start := time.Now()
	defer t.observe("find", start)

	leaf := t.descend(key)
	if leaf == noNode {
		return nil, false
	}
	n := t.nodes[leaf]
	idx, found := findKeyIndex(n.keys, key)
	if !found {
		return nil, false
	}
	return n.records[idx], true
}

// Range returns every key/record pair with lo <= key <= hi, in
// ascending key order, by walking the forward-leaf chain from the
// first leaf that could hold lo.
func (t *Tree) Range(lo, hi int32) []KeyRecord {
	start := time.Now()
	defer t.observe("range", start)

	var out []KeyRecord
	if t.root == noNode || lo > hi {
		return out
	}

	cur := t.descend(lo)
	for cur != noNode {
		n := t.nodes[cur]
		for i, k := range n.keys {
			if k < lo {
				continue
			}
			if k > hi {
				return out
			}
			out = append(out, KeyRecord{Key: k, Record: n.records[i]})
		}
		cur = n.next
	}
	return out
}
