package bptree

import "testing"

func TestNewRejectsBadOrder(t *testing.T) {
	if _, err := New(2); err == nil {
		t.Fatal("expected error for order below MinOrder")
	}
	if _, err := New(MaxOrder + 1); err == nil {
		t.Fatal("expected error for order above MaxOrder")
	}
}

func TestNewDefaultsOrder(t *testing.T) {
	tree, err := New(0)
	if err != nil {
		t.Fatalf("New(0): %v", err)
	}
	if tree.Order() != DefaultOrder {
		t.Fatalf("expected default order %d, got %d", DefaultOrder, tree.Order())
	}
}

func TestEmptyTreeHeightAndCount(t *testing.T) {
	tree, _ := New(4)
	if h := tree.Height(); h != 0 {
		t.Fatalf("expected height 0 for empty tree, got %d", h)
	}
	if c := tree.Count(); c != 0 {
		t.Fatalf("expected count 0 for empty tree, got %d", c)
	}
}

func TestSetOrderOnlyWhenEmpty(t *testing.T) {
	tree, _ := New(4)
	tree.Insert(1, recInt(1))

	if err := tree.SetOrder(5); err != nil {
		t.Fatalf("SetOrder against non-empty tree should not error: %v", err)
	}
	if tree.Order() != 4 {
		t.Fatalf("SetOrder against non-empty tree must be a no-op, got order %d", tree.Order())
	}

	tree.Delete(1)
	if err := tree.SetOrder(5); err != nil {
		t.Fatalf("SetOrder against empty tree: %v", err)
	}
	if tree.Order() != 5 {
		t.Fatalf("expected order 5 after SetOrder against empty tree, got %d", tree.Order())
	}

	if err := tree.SetOrder(1); err == nil {
		t.Fatal("expected error for out-of-range order regardless of tree emptiness")
	}
}

func TestPurgeRunsReleaseHookForDataRecords(t *testing.T) {
	var released []int32
	tree, _ := New(4)
	tree.WithReleaseHook(func(b []byte) { released = append(released, int32(len(b))) })

	tree.Insert(1, recData([]byte("a")))
	tree.Insert(2, recInt(2))
	tree.Insert(3, recData([]byte("bbb")))

	tree.Purge()

	if tree.Count() != 0 {
		t.Fatalf("expected count 0 after purge, got %d", tree.Count())
	}
	if len(released) != 2 {
		t.Fatalf("expected release hook called twice (data records only), got %d calls: %v", len(released), released)
	}
}
