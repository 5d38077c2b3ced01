package bptree

import "testing"

func TestInsertSplitsLeafAtOrder(t *testing.T) {
	tree, _ := New(4)
	for _, k := range []int32{1, 2, 3, 4} {
		tree.Insert(k, recInt(k))
	}
	if h := tree.Height(); h == 0 {
		t.Fatal("expected tree height to increase after a leaf split")
	}
	if c := tree.Count(); c != 4 {
		t.Fatalf("expected count 4, got %d", c)
	}
}

func TestInsertDuplicateIsNoOp(t *testing.T) {
	var released int
	tree, _ := New(4)
	tree.WithReleaseHook(func([]byte) { released++ })

	tree.Insert(50, recInt(50))
	tree.Insert(50, recInt(999))

	if tree.Count() != 1 {
		t.Fatalf("expected duplicate insert to not grow count, got %d", tree.Count())
	}
	if released != 0 {
		t.Fatalf("expected the rejected duplicate to never be released, got %d", released)
	}
	r, ok := tree.Find(50)
	if !ok {
		t.Fatal("expected key 50 to be present")
	}
	if r.Int != 50 {
		t.Fatalf("expected the original record to survive unchanged, got %d", r.Int)
	}
}

func TestInsertManyPreservesOrder(t *testing.T) {
	tree, _ := New(5)
	n := int32(500)
	for i := n - 1; i >= 0; i-- {
		tree.Insert(i, recInt(i))
	}
	if tree.Count() != int(n) {
		t.Fatalf("expected count %d, got %d", n, tree.Count())
	}

	got := tree.Range(0, n-1)
	if len(got) != int(n) {
		t.Fatalf("expected range of %d entries, got %d", n, len(got))
	}
	for i, kr := range got {
		if kr.Key != int32(i) {
			t.Fatalf("position %d: expected key %d, got %d", i, i, kr.Key)
		}
	}
}

func TestInsertIntoParentGrowsRootWhenFull(t *testing.T) {
	tree, _ := New(3)
	for i := int32(0); i < 20; i++ {
		tree.Insert(i, recInt(i))
	}
	for i := int32(0); i < 20; i++ {
		if _, ok := tree.Find(i); !ok {
			t.Fatalf("key %d missing after repeated splits", i)
		}
	}
}
