package typemap

import "fmt"

// stringMapping maps text values to character store types. The Unicode facet
// of the resolved mapping alone decides the N-prefix on literals; the value's
// content is never inspected.
type stringMapping struct {
	baseMapping
}

// NewStringMapping creates a mapping for string values.
func NewStringMapping(facets Facets) (Mapping, error) {
	if err := facets.Validate(); err != nil {
		return nil, err
	}
	return &stringMapping{baseMapping{facets}}, nil
}

func (m *stringMapping) GenerateSQLLiteral(value any) string {
	return renderLiteral(m.facets, value, func(v any) string {
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprint(v)
		}
		if m.facets.Unicode {
			return "N" + quoteString(s)
		}
		return quoteString(s)
	})
}

func (m *stringMapping) CloneWithSize(storeType string, size int) Mapping {
	f := m.facets
	f.StoreType = storeType
	f.Size = intFacet(size)
	return &stringMapping{baseMapping{f}}
}

func (m *stringMapping) CloneWithConverter(converter ValueConverter) Mapping {
	f := m.facets
	f.Converter = converter
	return &stringMapping{baseMapping{f}}
}
