package source

import "testing"

func TestInterner(t *testing.T) {
	in := NewInterner()

	if s, ok := in.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("NoStringID must map to empty string, got %q, ok=%v", s, ok)
	}
	if in.Intern("") != NoStringID {
		t.Error("empty name must intern to NoStringID")
	}

	id := in.Intern("fib")
	if id == NoStringID || in.Intern("fib") != id {
		t.Fatalf("repeated Intern must return the same non-zero id, got %d", id)
	}
	if s, _ := in.Lookup(id); s != "fib" {
		t.Errorf("Lookup = %q", s)
	}
	if other := in.Intern("fibIter"); other == id {
		t.Error("different names share an id")
	}
	if in.Len() != 3 {
		t.Errorf("Len = %d, want 3", in.Len())
	}
	if _, ok := in.Lookup(StringID(42)); ok {
		t.Error("Lookup of unknown id must fail")
	}
}

func TestInternerNormalizesToNFC(t *testing.T) {
	tests := []struct {
		name  string
		first string
		again string
	}{
		{"decomposed after composed", "caf\u00e9", "cafe\u0301"},
		{"composed after decomposed", "cafe\u0301", "caf\u00e9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInterner()
			a, b := in.Intern(tt.first), in.Intern(tt.again)
			if a != b {
				t.Fatalf("NFC-equivalent names got different ids: %d vs %d", a, b)
			}
			if s, _ := in.Lookup(a); s != "caf\u00e9" {
				t.Errorf("stored form = %q, want NFC", s)
			}
			if in.Len() != 2 {
				t.Errorf("Len = %d, want 2", in.Len())
			}
		})
	}
}
