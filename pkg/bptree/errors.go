package bptree

import "github.com/cockroachdb/errors"

// Order bounds, per the structural invariant that a node's fan-out
// stays small enough for linear scans to be cheap and large enough
// for splits/merges to always have somewhere to go.
const (
	MinOrder     = 3
	MaxOrder     = 100
	DefaultOrder = 4
)

func validateOrder(order int) error {
	if order < MinOrder || order > MaxOrder {
		return errors.Newf("bptree: order %d outside [%d, %d]", order, MinOrder, MaxOrder)
	}
	return nil
}

// structuralPanic reports a broken structural invariant — e.g. a
// neighbor lookup that fails to find a node in its parent's pointer
// array. Per design, this indicates a bug in the tree itself, not a
// caller error, so it panics rather than returning an error. It
// carries a stack trace via cockroachdb/errors so the one process
// boundary that chooses to recover from it (pkg/api's middleware) can
// report something actionable.
func structuralPanic(format string, args ...interface{}) {
	panic(errors.AssertionFailedf(format, args...))
}
