package typemap

import (
	"fmt"
	"strings"

	tmerrors "github.com/Itfly/typemap/internal/errors"
)

// Mapping describes how a host value type maps to a store column type and how
// values of that type render as SQL literal text. Mappings are immutable after
// construction and safe for unsynchronized concurrent reads; every change goes
// through a clone operation that produces a new instance of the same concrete
// variant. Mappings have reference identity only, never structural equality.
type Mapping interface {
	// Facets returns a copy of the mapping's facet set.
	Facets() Facets

	StoreType() string
	ClrType() *TypeIdentity
	DbType() (DbType, bool)
	Size() (int, bool)
	Precision() (int, bool)
	Scale() (int, bool)
	Unicode() bool
	FixedLength() bool
	Converter() ValueConverter
	Comparer() Comparer
	KeyComparer() Comparer

	// GenerateSQLLiteral renders value as provider literal text. A nil value
	// renders as the SQL NULL literal. The output is a pure function of the
	// mapping and the value.
	GenerateSQLLiteral(value any) string

	// CloneWithConverter returns a new mapping of the same concrete variant
	// with only the converter replaced. Comparer and KeyComparer are carried
	// over from the source unchanged, never re-derived from the new converter.
	CloneWithConverter(converter ValueConverter) Mapping
}

// SizableMapping is implemented by the mapping variants whose store type
// carries a length facet (binary, string, UDT). Sizing any other variant is
// categorically unsupported.
type SizableMapping interface {
	Mapping

	// CloneWithSize returns a new mapping of the same concrete variant with
	// the store type text and size replaced. ClrType, Unicode, FixedLength,
	// Converter, Comparer and KeyComparer are carried over from the source.
	CloneWithSize(storeType string, size int) Mapping
}

// CloneWithSize applies a store type and size override to m. It fails with a
// SIZING_UNSUPPORTED error when the variant does not carry a length facet.
func CloneWithSize(m Mapping, storeType string, size int) (Mapping, error) {
	s, ok := m.(SizableMapping)
	if !ok {
		return nil, tmerrors.NewMappingError(tmerrors.CodeSizingUnsupported,
			fmt.Sprintf("mapping for store type %q does not support a size facet", m.StoreType()))
	}
	return s.CloneWithSize(storeType, size), nil
}

// baseMapping carries the facet set and accessor plumbing shared by all
// variants. Concrete variants embed it and add rendering and cloning.
type baseMapping struct {
	facets Facets
}

func (b *baseMapping) Facets() Facets {
	return b.facets
}

func (b *baseMapping) StoreType() string {
	return b.facets.StoreType
}

func (b *baseMapping) ClrType() *TypeIdentity {
	return b.facets.ClrType
}

func (b *baseMapping) DbType() (DbType, bool) {
	if b.facets.DbType == nil {
		return 0, false
	}
	return *b.facets.DbType, true
}

func (b *baseMapping) Size() (int, bool) {
	if b.facets.Size == nil {
		return 0, false
	}
	return *b.facets.Size, true
}

func (b *baseMapping) Precision() (int, bool) {
	if b.facets.Precision == nil {
		return 0, false
	}
	return *b.facets.Precision, true
}

func (b *baseMapping) Scale() (int, bool) {
	if b.facets.Scale == nil {
		return 0, false
	}
	return *b.facets.Scale, true
}

func (b *baseMapping) Unicode() bool {
	return b.facets.Unicode
}

func (b *baseMapping) FixedLength() bool {
	return b.facets.FixedLength
}

func (b *baseMapping) Converter() ValueConverter {
	return b.facets.Converter
}

func (b *baseMapping) Comparer() Comparer {
	return b.facets.Comparer
}

func (b *baseMapping) KeyComparer() Comparer {
	return b.facets.KeyComparer
}

const nullLiteral = "NULL"

// renderLiteral applies the NULL and converter handling shared by every
// variant before the per-variant renderer runs.
func renderLiteral(f Facets, value any, render func(any) string) string {
	if value == nil {
		return nullLiteral
	}
	if f.Converter != nil {
		value = f.Converter.ToStore(value)
		if value == nil {
			return nullLiteral
		}
	}
	return render(value)
}

// quoteString wraps s in single quotes, doubling embedded quotes per standard
// SQL escaping.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
