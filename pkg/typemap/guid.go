package typemap

import (
	"fmt"

	"github.com/google/uuid"
)

// guidMapping maps uuid.UUID values to the uniqueidentifier store type.
type guidMapping struct {
	baseMapping
}

// NewGUIDMapping creates a mapping for uuid.UUID values.
func NewGUIDMapping(facets Facets) (Mapping, error) {
	if err := facets.Validate(); err != nil {
		return nil, err
	}
	return &guidMapping{baseMapping{facets}}, nil
}

func (m *guidMapping) GenerateSQLLiteral(value any) string {
	return renderLiteral(m.facets, value, func(v any) string {
		switch u := v.(type) {
		case uuid.UUID:
			return quoteString(u.String())
		case string:
			return quoteString(u)
		default:
			return quoteString(fmt.Sprint(v))
		}
	})
}

func (m *guidMapping) CloneWithConverter(converter ValueConverter) Mapping {
	f := m.facets
	f.Converter = converter
	return &guidMapping{baseMapping{f}}
}
