// Package snapshot persists a tree's contents, not its node layout.
// Export walks every key/record pair in ascending order and encodes it
// with encoding/gob under zstd compression; Import rebuilds a tree of
// the requested order by reinserting every pair in file order. This is
// deliberately not a physical page format: a snapshot taken from one
// order can be imported into a tree of a different order, and the
// rebuilt tree's node layout need not match the one it was exported
// from.
package snapshot

import (
	"encoding/gob"
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"

	"github.com/ssargent/bptreedb/pkg/bptree"
	"github.com/ssargent/bptreedb/pkg/record"
)

// header precedes the record stream and carries enough to reconstruct
// a tree with the same fan-out it was exported from.
type header struct {
	Order int
	Count int
}

// entry is the gob-encodable mirror of a record.Record plus its key.
type entry struct {
	Key   int32
	Kind  record.Kind
	Char  byte
	Int   int32
	Float float64
	Bytes []byte
}

// Export writes every key/record pair currently in tree to w, in
// ascending key order.
func Export(w io.Writer, tree *bptree.Tree) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return errors.Wrap(err, "snapshot: opening zstd writer")
	}
	defer zw.Close()

	enc := gob.NewEncoder(zw)

	pairs := tree.Range(math.MinInt32, math.MaxInt32)
	if err := enc.Encode(header{Order: tree.Order(), Count: len(pairs)}); err != nil {
		return errors.Wrap(err, "snapshot: encoding header")
	}

	for _, kr := range pairs {
		e := entry{Key: kr.Key}
		if kr.Record != nil {
			e.Kind = kr.Record.Kind
			e.Char = kr.Record.Char
			e.Int = kr.Record.Int
			e.Float = kr.Record.Float
			e.Bytes = kr.Record.Bytes
		}
		if err := enc.Encode(e); err != nil {
			return errors.Wrapf(err, "snapshot: encoding key %d", kr.Key)
		}
	}
	return nil
}

// Import reads a stream written by Export and rebuilds a tree from it.
// The returned tree's order matches the exported tree's order unless
// overrideOrder is non-zero, in which case it is used instead.
func Import(r io.Reader, overrideOrder int) (*bptree.Tree, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot: opening zstd reader")
	}
	defer zr.Close()

	dec := gob.NewDecoder(zr)

	var h header
	if err := dec.Decode(&h); err != nil {
		return nil, errors.Wrap(err, "snapshot: decoding header")
	}

	order := h.Order
	if overrideOrder != 0 {
		order = overrideOrder
	}
	tree, err := bptree.New(order)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot: constructing tree")
	}

	for i := 0; i < h.Count; i++ {
		var e entry
		if err := dec.Decode(&e); err != nil {
			return nil, errors.Wrapf(err, "snapshot: decoding entry %d", i)
		}
		rec := &record.Record{Kind: e.Kind, Char: e.Char, Int: e.Int, Float: e.Float, Bytes: e.Bytes, Size: len(e.Bytes)}
		tree.Insert(e.Key, rec)
	}
	return tree, nil
}
