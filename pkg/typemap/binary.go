package typemap

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// binaryMapping maps byte sequences to binary store types (varbinary, binary,
// rowversion). Its default comparers use byte-wise value equality, which is
// what drives concurrency token modification detection in change trackers.
type binaryMapping struct {
	baseMapping
}

// NewBinaryMapping creates a mapping for byte sequence values. When the
// facets carry no comparers, byte-wise value comparers are installed.
func NewBinaryMapping(facets Facets) (Mapping, error) {
	if err := facets.Validate(); err != nil {
		return nil, err
	}
	if facets.Comparer == nil {
		facets.Comparer = RowVersionComparer{}
	}
	if facets.KeyComparer == nil {
		facets.KeyComparer = RowVersionComparer{}
	}
	return &binaryMapping{baseMapping{facets}}, nil
}

// GenerateSQLLiteral renders bytes as 0x-prefixed uppercase hex with two
// digits per byte and no separators.
func (m *binaryMapping) GenerateSQLLiteral(value any) string {
	return renderLiteral(m.facets, value, func(v any) string {
		b, ok := v.([]byte)
		if !ok {
			return quoteString(fmt.Sprint(v))
		}
		return "0x" + strings.ToUpper(hex.EncodeToString(b))
	})
}

func (m *binaryMapping) CloneWithSize(storeType string, size int) Mapping {
	f := m.facets
	f.StoreType = storeType
	f.Size = intFacet(size)
	return &binaryMapping{baseMapping{f}}
}

func (m *binaryMapping) CloneWithConverter(converter ValueConverter) Mapping {
	f := m.facets
	f.Converter = converter
	return &binaryMapping{baseMapping{f}}
}
