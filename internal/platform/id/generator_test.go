package id

import "testing"

func TestRandomGenerator_NewID(t *testing.T) {
	gen := NewRandomGenerator(8)

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if len(first) != 16 {
		t.Fatalf("expected 16 hex chars, got %q", first)
	}
	if first == second {
		t.Fatalf("expected distinct ids")
	}
	if got, _ := NewRandomGenerator(0).NewID(); len(got) != 32 {
		t.Fatalf("expected default size of 16 bytes, got %q", got)
	}
}
