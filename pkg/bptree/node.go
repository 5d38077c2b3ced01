package bptree

import "github.com/ssargent/bptreedb/pkg/record"

// nodeID addresses a node within a Tree's arena. noNode is the null
// sentinel, standing in for the source's nil pointer.
type nodeID int32

const noNode nodeID = -1

// node is the uniform shape shared by leaves and internal nodes. Only
// the fields relevant to isLeaf are populated; the rest stay at their
// zero value.
//
// Internal: keys holds len(children)-1 separator keys; children[i]
// descends to subtrees with keys < keys[i] for i==0, and to subtrees
// with keys[i-1] <= key < keys[i] otherwise (keys[len(keys)-1] <= key
// for the last child).
//
// Leaf: keys[i] pairs with records[i]; next chains to the leaf
// immediately to the right in key order, or noNode for the rightmost
// leaf.
type node struct {
	isLeaf   bool
	keys     []int32
	children []nodeID
	records  []*record.Record
	next     nodeID
	parent   nodeID
}

// cut implements the asymmetric split point: n/2 if n is even, else
// n/2 + 1. Used to choose the split index so the left side of a split
// is never smaller than the right.
func cut(n int) int {
	if n%2 == 0 {
		return n / 2
	}
	return n/2 + 1
}

// findKeyIndex returns the position where key belongs in an ascending
// key slice, and whether it is already present there.
func findKeyIndex(keys []int32, key int32) (idx int, found bool) {
	i := 0
	for i < len(keys) && keys[i] < key {
		i++
	}
	if i < len(keys) && keys[i] == key {
		return i, true
	}
	return i, false
}

func insertInt32At(s []int32, idx int, v int32) []int32 {
	s = append(s, 0)
	copy(s[idx+1:], s[idx:len(s)-1])
	s[idx] = v
	return s
}

func removeInt32At(s []int32, idx int) []int32 {
	copy(s[idx:], s[idx+1:])
	return s[:len(s)-1]
}

func insertNodeIDAt(s []nodeID, idx int, v nodeID) []nodeID {
	s = append(s, noNode)
	copy(s[idx+1:], s[idx:len(s)-1])
	s[idx] = v
	return s
}

func removeNodeIDAt(s []nodeID, idx int) []nodeID {
	copy(s[idx:], s[idx+1:])
	return s[:len(s)-1]
}

func insertRecordAt(s []*record.Record, idx int, v *record.Record) []*record.Record {
	s = append(s, nil)
	copy(s[idx+1:], s[idx:len(s)-1])
	s[idx] = v
	return s
}

func removeRecordAt(s []*record.Record, idx int) []*record.Record {
	copy(s[idx:], s[idx+1:])
	return s[:len(s)-1]
}
