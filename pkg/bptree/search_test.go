package bptree

import "testing"

func TestFindMissingOnEmptyTree(t *testing.T) {
	tree, _ := New(4)
	if _, ok := tree.Find(1); ok {
		t.Fatal("expected Find on empty tree to report not found")
	}
}

func TestFindAfterInserts(t *testing.T) {
	tree, _ := New(4)
	for i := int32(0); i < 50; i++ {
		tree.Insert(i, recInt(i*10))
	}

	for i := int32(0); i < 50; i++ {
		r, ok := tree.Find(i)
		if !ok {
			t.Fatalf("key %d missing", i)
		}
		if r.Int != i*10 {
			t.Fatalf("key %d: expected value %d, got %d", i, i*10, r.Int)
		}
	}

	if _, ok := tree.Find(999); ok {
		t.Fatal("expected key 999 to be absent")
	}
}

func TestRangeAscendingAndBounds(t *testing.T) {
	tree, _ := New(4)
	for _, k := range []int32{5, 1, 9, 3, 7, 2, 8, 4, 6} {
		tree.Insert(k, recInt(k))
	}

	got := tree.Range(3, 7)
	want := []int32{3, 4, 5, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %d: %+v", len(want), len(got), got)
	}
	for i, kr := range got {
		if kr.Key != want[i] {
			t.Fatalf("position %d: expected key %d, got %d", i, want[i], kr.Key)
		}
		if kr.Record.Int != want[i] {
			t.Fatalf("position %d: expected record value %d, got %d", i, want[i], kr.Record.Int)
		}
	}
}

func TestRangeEmptyWhenLoAfterHi(t *testing.T) {
	tree, _ := New(4)
	tree.Insert(1, recInt(1))
	if got := tree.Range(5, 1); len(got) != 0 {
		t.Fatalf("expected empty range for lo > hi, got %+v", got)
	}
}

func TestRangeOnEmptyTree(t *testing.T) {
	tree, _ := New(4)
	if got := tree.Range(0, 100); len(got) != 0 {
		t.Fatalf("expected empty range on empty tree, got %+v", got)
	}
}
