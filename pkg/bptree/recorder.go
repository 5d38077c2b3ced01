package bptree

import "time"

// Recorder observes tree operations without the core depending on any
// particular telemetry backend. pkg/telemetry provides a Prometheus
// implementation; a Tree built by New uses noopRecorder until one is
// installed with WithRecorder.
type Recorder interface {
	// ObserveOp is called once per public operation with its name
	// ("insert", "find", "range", "delete", "purge"), its wall-clock
	// duration, and an error that is always nil today (the core has
	// no fallible mutation path) but is threaded through so a future
	// fallible operation does not need an interface change.
	ObserveOp(op string, dur time.Duration, err error)
	// SetHeight reports the tree's current height.
	SetHeight(h int)
	// SetCount reports the tree's current key count.
	SetCount(n int)
}

type noopRecorder struct{}

func (noopRecorder) ObserveOp(string, time.Duration, error) {}
func (noopRecorder) SetHeight(int)                          {}
func (noopRecorder) SetCount(int)                            {}


func (t *Tree) observe(op string, start time.Time) {
	t.rec.ObserveOp(op, time.Since(start), nil)
	t.rec.SetHeight(t.Height())
	t.rec.SetCount(t.Count())
}
