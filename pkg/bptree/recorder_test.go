package bptree

import (
	"testing"
	"time"
)

type spyRecorder struct {
	ops    []string
	height int
	count  int
}

func (s *spyRecorder) ObserveOp(op string, _ time.Duration, _ error) {
	s.ops = append(s.ops, op)
}
func (s *spyRecorder) SetHeight(h int) { s.height = h }
func (s *spyRecorder) SetCount(n int)  { s.count = n }

func TestRecorderObservesEachOperation(t *testing.T) {
	spy := &spyRecorder{}
	tree, _ := New(4)
	tree.WithRecorder(spy)

	tree.Insert(1, recInt(1))
	tree.Insert(2, recInt(2))
	tree.Find(1)
	tree.Range(0, 10)
	tree.Delete(1)

	want := []string{"insert", "insert", "find", "range", "delete"}
	if len(spy.ops) != len(want) {
		t.Fatalf("expected ops %v, got %v", want, spy.ops)
	}
	for i := range want {
		if spy.ops[i] != want[i] {
			t.Fatalf("op %d: expected %q, got %q", i, want[i], spy.ops[i])
		}
	}
	if spy.count != 1 {
		t.Fatalf("expected recorder count 1 after final delete, got %d", spy.count)
	}
}

func TestWithRecorderNilRestoresNoop(t *testing.T) {
	tree, _ := New(4)
	tree.WithRecorder(&spyRecorder{})
	tree.WithRecorder(nil)
	// Must not panic.
	tree.Insert(1, recInt(1))
}
