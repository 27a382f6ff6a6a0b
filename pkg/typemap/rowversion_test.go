package typemap

import "testing"

func TestIsModified(t *testing.T) {
	cases := []struct {
		name     string
		original []byte
		current  []byte
		want     bool
	}{
		{"identical tokens", []byte{1, 2, 3, 4, 5, 6, 7, 8}, []byte{1, 2, 3, 4, 5, 6, 7, 8}, false},
		{"one byte differs", []byte{1, 2, 3, 4, 5, 6, 7, 8}, []byte{1, 2, 3, 4, 5, 6, 7, 9}, true},
		{"length differs", []byte{1, 2, 3}, []byte{1, 2, 3, 4}, true},
		{"both empty", []byte{}, []byte{}, false},
		{"nil vs empty", nil, []byte{}, false},
		{"nil vs data", nil, []byte{1}, true},
	}

	for _, tt := range cases {
		if got := IsModified(tt.original, tt.current); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsModifiedValueEqualityNotIdentity(t *testing.T) {
	original := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	copied := make([]byte, len(original))
	copy(copied, original)

	if IsModified(original, copied) {
		t.Error("a copy with equal bytes is not a modification")
	}
	if IsModified(original, original) {
		t.Error("the same slice is never a modification")
	}
}

func TestRowVersionComparer(t *testing.T) {
	c := RowVersionComparer{}

	if !c.Equal([]byte{1, 2}, []byte{1, 2}) {
		t.Error("equal byte sequences should compare equal")
	}
	if c.Equal([]byte{1, 2}, []byte{2, 1}) {
		t.Error("different byte sequences should not compare equal")
	}
	if !c.Equal("a", "a") {
		t.Error("non-byte operands fall back to deep equality")
	}
}

func TestBinaryMappingCarriesRowVersionComparer(t *testing.T) {
	r := NewRegistry()
	m, err := r.FindMappingByStoreType("rowversion")
	if err != nil {
		t.Fatal(err)
	}

	comparer := m.Comparer()
	if comparer == nil {
		t.Fatal("binary mappings should carry a default comparer")
	}
	if !comparer.Equal([]byte{0, 1}, []byte{0, 1}) {
		t.Error("comparer should use byte-wise value equality")
	}
	if m.KeyComparer() == nil {
		t.Error("binary mappings should carry a default key comparer")
	}
}
