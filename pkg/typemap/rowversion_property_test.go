package typemap

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProperty_IsModifiedElementwise validates that for equal-length byte
// sequences the verdict equals elementwise inequality, and that any length
// difference is always a modification.
func TestProperty_IsModifiedElementwise(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("equal-length verdict equals elementwise inequality", prop.ForAll(
		func(a []byte, flips []bool) bool {
			b := make([]byte, len(a))
			copy(b, a)
			differs := false
			for i := range b {
				if i < len(flips) && flips[i] {
					b[i] ^= 0xFF
					if a[i] != b[i] {
						differs = true
					}
				}
			}
			return IsModified(a, b) == differs
		},
		gen.SliceOf(gen.UInt8()),
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("length difference is always a modification", prop.ForAll(
		func(a []byte, extra []byte) bool {
			if len(extra) == 0 {
				return true
			}
			return IsModified(a, append(append([]byte{}, a...), extra...))
		},
		gen.SliceOf(gen.UInt8()),
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("a copy is never a modification", prop.ForAll(
		func(a []byte) bool {
			cp := make([]byte, len(a))
			copy(cp, a)
			return !IsModified(a, cp)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}

// TestProperty_LiteralDeterminism validates that literal rendering is a pure
// function of the mapping and the value.
func TestProperty_LiteralDeterminism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	r := NewRegistry()
	binary, err := r.FindMappingByStoreType("varbinary(max)")
	if err != nil {
		t.Fatal(err)
	}
	nvarchar, err := r.FindMappingByStoreType("nvarchar(max)")
	if err != nil {
		t.Fatal(err)
	}

	properties.Property("binary literals render identically on repeat", prop.ForAll(
		func(b []byte) bool {
			return binary.GenerateSQLLiteral(b) == binary.GenerateSQLLiteral(b)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("binary literals are 0x-prefixed with two digits per byte", prop.ForAll(
		func(b []byte) bool {
			lit := binary.GenerateSQLLiteral(b)
			return len(lit) == 2+2*len(b) && lit[:2] == "0x"
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("string literals render identically on repeat", prop.ForAll(
		func(s string) bool {
			return nvarchar.GenerateSQLLiteral(s) == nvarchar.GenerateSQLLiteral(s)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
