package typemap

import (
	"fmt"

	tmerrors "github.com/Itfly/typemap/internal/errors"
)

// DbType is the provider-agnostic column type discriminator.
type DbType int

const (
	DbTypeBinary DbType = iota
	DbTypeBool
	DbTypeInt8
	DbTypeInt16
	DbTypeInt32
	DbTypeInt64
	DbTypeFloat32
	DbTypeFloat64
	DbTypeDecimal
	DbTypeString
	DbTypeDate
	DbTypeDateTime
	DbTypeDateTimeOffset
	DbTypeTime
	DbTypeGUID
	DbTypeUDT
)

// String returns the string representation of a DbType.
func (d DbType) String() string {
	switch d {
	case DbTypeBinary:
		return "binary"
	case DbTypeBool:
		return "bool"
	case DbTypeInt8:
		return "int8"
	case DbTypeInt16:
		return "int16"
	case DbTypeInt32:
		return "int32"
	case DbTypeInt64:
		return "int64"
	case DbTypeFloat32:
		return "float32"
	case DbTypeFloat64:
		return "float64"
	case DbTypeDecimal:
		return "decimal"
	case DbTypeString:
		return "string"
	case DbTypeDate:
		return "date"
	case DbTypeDateTime:
		return "datetime"
	case DbTypeDateTimeOffset:
		return "datetimeoffset"
	case DbTypeTime:
		return "time"
	case DbTypeGUID:
		return "guid"
	case DbTypeUDT:
		return "udt"
	default:
		return fmt.Sprintf("DbType(%d)", int(d))
	}
}

// Facets is the immutable attribute bag carried by a mapping. Optional facets
// use pointers so "unset" stays distinct from a zero value; clone operations
// rely on that to tell "keep" apart from "set to default".
type Facets struct {
	// StoreType is the column type text, e.g. "nvarchar(max)". Never empty.
	StoreType string

	// ClrType identifies the host value type. Never nil.
	ClrType *TypeIdentity

	// DbType is the provider-agnostic discriminator, when known.
	DbType *DbType

	// Size is the length facet in characters or bytes, when set.
	Size *int

	// Precision and Scale are the numeric/temporal facets, when set.
	Precision *int
	Scale     *int

	// Unicode reports whether string values use the national character set.
	Unicode bool

	// FixedLength reports whether the column is fixed rather than variable length.
	FixedLength bool

	// Converter translates between model and store values, when set.
	Converter ValueConverter

	// Comparer decides value equality, when set.
	Comparer Comparer

	// KeyComparer decides equality for key-comparison use, when set.
	KeyComparer Comparer
}

// Validate checks the facet invariants shared by all mapping variants.
func (f Facets) Validate() error {
	if f.StoreType == "" {
		return tmerrors.NewMappingError(tmerrors.CodeInvalidFacets, "store type must not be empty")
	}
	if f.ClrType == nil {
		return tmerrors.NewMappingError(tmerrors.CodeInvalidFacets,
			fmt.Sprintf("mapping for store type %q has no clr type", f.StoreType))
	}
	return nil
}

func intFacet(v int) *int {
	return &v
}

func dbTypeFacet(d DbType) *DbType {
	return &d
}
