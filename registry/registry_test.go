package registry

import "testing"

func TestPutAndGet(t *testing.T) {
	tbl := New()
	id := tbl.Put(KindRegex, "a+b")
	obj, err := tbl.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if obj.Kind != KindRegex || obj.Value != "a+b" {
		t.Fatalf("Get(%d) = %+v, want KindRegex/\"a+b\"", id, obj)
	}
}

func TestIdsNeverReused(t *testing.T) {
	tbl := New()
	first := tbl.Put(KindDFA, 1)
	second := tbl.Put(KindDFA, 2)
	if second != first+1 {
		t.Fatalf("second id = %d, want %d", second, first+1)
	}
}

func TestRequireRejectsWrongKind(t *testing.T) {
	tbl := New()
	id := tbl.Put(KindNFA, 42)
	if _, err := tbl.Require(id, KindDFA); err == nil {
		t.Fatal("Require with mismatched kind did not fail")
	}
	if _, err := tbl.Require(id, KindNFA); err != nil {
		t.Fatalf("Require with matching kind failed: %v", err)
	}
}

func TestGetRejectsOutOfRangeID(t *testing.T) {
	tbl := New()
	if _, err := tbl.Get(0); err == nil {
		t.Fatal("Get on empty table did not fail")
	}
}
