package idgen

import "testing"

func TestUUIDGenerator(t *testing.T) {
	gen := UUIDGenerator{}
	a := gen.NewID()
	b := gen.NewID()
	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a == b {
		t.Errorf("consecutive IDs must differ, got %q twice", a)
	}
}

func TestSequenceGenerator(t *testing.T) {
	gen := NewSequenceGenerator("dose")
	if got := gen.NewID(); got != "dose-1" {
		t.Errorf("expected dose-1, got %q", got)
	}
	if got := gen.NewID(); got != "dose-2" {
		t.Errorf("expected dose-2, got %q", got)
	}
}
