package typemap

import "testing"

func TestParseStoreType(t *testing.T) {
	cases := []struct {
		input    string
		base     string
		args     []int
		max      bool
	}{
		{"nvarchar(max)", "nvarchar", nil, true},
		{"NVARCHAR(MAX)", "nvarchar", nil, true},
		{"varchar(900)", "varchar", []int{900}, false},
		{"decimal(18, 2)", "decimal", []int{18, 2}, false},
		{"decimal(18,2)", "decimal", []int{18, 2}, false},
		{"datetime2", "datetime2", nil, false},
		{"  time(3) ", "time", []int{3}, false},
		{"rowversion", "rowversion", nil, false},
	}

	for _, tt := range cases {
		p, err := parseStoreType(tt.input)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.input, err)
		}
		if p.Base != tt.base {
			t.Errorf("parse %q: base %q, want %q", tt.input, p.Base, tt.base)
		}
		if p.Max != tt.max {
			t.Errorf("parse %q: max %v, want %v", tt.input, p.Max, tt.max)
		}
		if len(p.Args) != len(tt.args) {
			t.Fatalf("parse %q: args %v, want %v", tt.input, p.Args, tt.args)
		}
		for i := range tt.args {
			if p.Args[i] != tt.args[i] {
				t.Errorf("parse %q: arg[%d]=%d, want %d", tt.input, i, p.Args[i], tt.args[i])
			}
		}
	}
}

func TestParseStoreTypeErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "nvarchar(", "nvarchar(max", "(10)", "varchar(ten)"} {
		if _, err := parseStoreType(input); err == nil {
			t.Errorf("parse %q: expected error", input)
		}
	}
}

func TestParseStoreTypeKeepsRawCasing(t *testing.T) {
	p, err := parseStoreType("NVarChar(450)")
	if err != nil {
		t.Fatal(err)
	}
	if p.Raw != "NVarChar(450)" {
		t.Errorf("raw %q, want original casing kept", p.Raw)
	}
	if p.Base != "nvarchar" {
		t.Errorf("base %q, want lowercased", p.Base)
	}
}
