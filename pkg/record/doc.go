// Package record defines the value type stored at each key of a
// bptree.Tree.
//
// A Record is a small tagged union: it carries exactly one of a char,
// an int, a float, or an opaque byte slice, selected by Kind. Records
// are created by callers and handed to a tree at Insert; from that
// point the tree owns them until they are removed by Delete or Purge,
// at which point a caller-supplied release hook (if any) runs against
// the embedded bytes of a Data record before the Record is dropped.
package record
