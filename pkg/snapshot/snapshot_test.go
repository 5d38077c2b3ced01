package snapshot

import (
	"bytes"
	"testing"

	"github.com/ssargent/bptreedb/pkg/bptree"
	"github.com/ssargent/bptreedb/pkg/record"
)

func TestExportImportRoundTrip(t *testing.T) {
	tree, _ := bptree.New(4)
	for i := int32(0); i < 40; i++ {
		tree.Insert(i, record.MakeInt(i*2))
	}
	tree.Insert(100, record.MakeData([]byte("payload")))

	var buf bytes.Buffer
	if err := Export(&buf, tree); err != nil {
		t.Fatalf("Export: %v", err)
	}

	restored, err := Import(&buf, 0)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if restored.Order() != tree.Order() {
		t.Fatalf("expected order %d, got %d", tree.Order(), restored.Order())
	}
	if restored.Count() != tree.Count() {
		t.Fatalf("expected count %d, got %d", tree.Count(), restored.Count())
	}
	for i := int32(0); i < 40; i++ {
		r, ok := restored.Find(i)
		if !ok {
			t.Fatalf("key %d missing after round trip", i)
		}
		if r.Int != i*2 {
			t.Fatalf("key %d: expected %d, got %d", i, i*2, r.Int)
		}
	}
	r, ok := restored.Find(100)
	if !ok || string(r.Bytes) != "payload" {
		t.Fatalf("expected data record to round-trip, got %+v ok=%v", r, ok)
	}
}

func TestImportOverridesOrder(t *testing.T) {
	tree, _ := bptree.New(4)
	tree.Insert(1, record.MakeInt(1))

	var buf bytes.Buffer
	if err := Export(&buf, tree); err != nil {
		t.Fatalf("Export: %v", err)
	}

	restored, err := Import(&buf, 10)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if restored.Order() != 10 {
		t.Fatalf("expected overridden order 10, got %d", restored.Order())
	}
}
