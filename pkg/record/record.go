package record

import "fmt"

// Kind selects which field of a Record holds the value.
type Kind uint8

const (
	// Char records a single byte.
	Char Kind = iota
	// Int records a signed 32-bit integer.
	Int
	// Float records a 64-bit float.
	Float
	// Data records an opaque, caller-owned byte slice.
	Data
)

func (k Kind) String() string {
	switch k {
	case Char:
		return "char"
	case Int:
		return "int"
	case Float:
		return "float"
	case Data:
		return "data"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Record is the tagged value a Tree key maps to. Only the field named
// by Kind is meaningful; Size is meaningful only when Kind is Data,
// where it records len(Bytes) at construction time (the source of
// truth remains the slice itself — Size exists because callers in the
// original design passed a size alongside a raw pointer).
type Record struct {
	Kind  Kind
	Char  byte
	Int   int32
	Float float64
	Bytes []byte
	Size  int
}

// ReleaseHook is invoked exactly once for a Data record at the point it
// leaves a tree, on both the Delete and Purge paths (see design note on
// purge/delete parity). It receives the record's embedded bytes so a
// caller can return pooled buffers, close mmaps, etc. It is never
// invoked for Char, Int, or Float records, and never invoked for a
// record rejected as a duplicate insert.
type ReleaseHook func(data []byte)

// MakeChar constructs a Char record.
func MakeChar(c byte) *Record {
	return &Record{Kind: Char, Char: c}
}

// MakeInt constructs an Int record.
func MakeInt(v int32) *Record {
	return &Record{Kind: Int, Int: v}
}

// MakeFloat constructs a Float record.
func MakeFloat(v float64) *Record {
	return &Record{Kind: Float, Float: v}
}

// MakeData constructs a Data record over the given bytes. The caller
// relinquishes ownership of data once the record is inserted into a
// tree; it must not be mutated afterward.
func MakeData(data []byte) *Record {
	return &Record{Kind: Data, Bytes: data, Size: len(data)}
}

// release runs hook against the record's bytes if the record is a Data
// record and hook is non-nil. Safe to call with a nil hook.
func release(r *Record, hook ReleaseHook) {
	if r == nil || hook == nil || r.Kind != Data {
		return
	}
	hook(r.Bytes)
}

// Release invokes hook on r if r is a Data record, no-op otherwise. It
// is the single choke point both Tree.Delete and Tree.Purge call
// through, so the two paths can never again drift out of parity the
// way the source's delete/purge did.
func Release(r *Record, hook ReleaseHook) {
	release(r, hook)
}
