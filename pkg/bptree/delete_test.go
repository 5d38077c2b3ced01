package bptree

import "testing"

func TestDeleteMissingKeyReportsFalse(t *testing.T) {
	tree, _ := New(4)
	tree.Insert(1, recInt(1))
	if tree.Delete(99) {
		t.Fatal("expected Delete of absent key to report false")
	}
}

func TestDeleteFromEmptyTree(t *testing.T) {
	tree, _ := New(4)
	if tree.Delete(1) {
		t.Fatal("expected Delete on empty tree to report false")
	}
}

func TestDeleteAllCollapsesToEmpty(t *testing.T) {
	tree, _ := New(4)
	keys := []int32{1, 2, 3, 4, 5, 6, 7}
	for _, k := range keys {
		tree.Insert(k, recInt(k))
	}
	for _, k := range keys {
		if !tree.Delete(k) {
			t.Fatalf("expected to delete key %d", k)
		}
	}
	if tree.Count() != 0 {
		t.Fatalf("expected empty tree, got count %d", tree.Count())
	}
	if tree.Height() != 0 {
		t.Fatalf("expected height 0 for empty tree, got %d", tree.Height())
	}
}

func TestDeleteReleasesDataRecord(t *testing.T) {
	var released [][]byte
	tree, _ := New(4)
	tree.WithReleaseHook(func(b []byte) { released = append(released, b) })

	tree.Insert(1, recData([]byte("payload")))
	tree.Insert(2, recInt(2))

	tree.Delete(1)
	tree.Delete(2)

	if len(released) != 1 {
		t.Fatalf("expected release hook called once for the Data record, got %d", len(released))
	}
	if string(released[0]) != "payload" {
		t.Fatalf("unexpected released payload: %q", released[0])
	}
}

func TestDeleteTriggersRedistributeAndCoalesce(t *testing.T) {
	tree, _ := New(4)
	n := int32(100)
	for i := int32(0); i < n; i++ {
		tree.Insert(i, recInt(i))
	}

	// Delete every third key first, forcing some nodes to redistribute
	// rather than immediately coalesce, then delete the rest.
	for i := int32(0); i < n; i += 3 {
		if !tree.Delete(i) {
			t.Fatalf("expected to delete key %d", i)
		}
	}
	for i := int32(0); i < n; i++ {
		if i%3 == 0 {
			if _, ok := tree.Find(i); ok {
				t.Fatalf("key %d should have been deleted", i)
			}
			continue
		}
		if _, ok := tree.Find(i); !ok {
			t.Fatalf("key %d should still be present", i)
		}
	}

	for i := int32(0); i < n; i++ {
		if i%3 != 0 {
			tree.Delete(i)
		}
	}
	if tree.Count() != 0 {
		t.Fatalf("expected tree empty, got count %d", tree.Count())
	}
}

func TestDeleteThenReinsert(t *testing.T) {
	tree, _ := New(4)
	for i := int32(0); i < 30; i++ {
		tree.Insert(i, recInt(i))
	}
	for i := int32(0); i < 20; i++ {
		tree.Delete(i)
	}
	for i := int32(0); i < 20; i++ {
		tree.Insert(i, recInt(i*2))
	}
	for i := int32(0); i < 30; i++ {
		r, ok := tree.Find(i)
		if !ok {
			t.Fatalf("key %d missing after delete/reinsert cycle", i)
		}
		want := i
		if i < 20 {
			want = i * 2
		}
		if r.Int != want {
			t.Fatalf("key %d: expected %d, got %d", i, want, r.Int)
		}
	}
}

func TestDeleteDescendingOrder(t *testing.T) {
	tree, _ := New(5)
	n := int32(200)
	for i := int32(0); i < n; i++ {
		tree.Insert(i, recInt(i))
	}
	for i := n - 1; i >= 0; i-- {
		if !tree.Delete(i) {
			t.Fatalf("expected to delete key %d", i)
		}
	}
	if tree.Count() != 0 {
		t.Fatalf("expected empty tree, got %d", tree.Count())
	}
}
