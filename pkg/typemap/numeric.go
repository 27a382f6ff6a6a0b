package typemap

import (
	"fmt"
	"strconv"
)

// floatMapping maps floating point values to approximate and exact numeric
// store types (float, real, decimal). Rendering uses the shortest decimal
// form that round-trips.
type floatMapping struct {
	baseMapping
}

// NewFloatMapping creates a mapping for float values.
func NewFloatMapping(facets Facets) (Mapping, error) {
	if err := facets.Validate(); err != nil {
		return nil, err
	}
	return &floatMapping{baseMapping{facets}}, nil
}

func (m *floatMapping) GenerateSQLLiteral(value any) string {
	return renderLiteral(m.facets, value, func(v any) string {
		switch f := v.(type) {
		case float64:
			return strconv.FormatFloat(f, 'g', -1, 64)
		case float32:
			return strconv.FormatFloat(float64(f), 'g', -1, 32)
		default:
			return fmt.Sprint(v)
		}
	})
}

func (m *floatMapping) CloneWithConverter(converter ValueConverter) Mapping {
	f := m.facets
	f.Converter = converter
	return &floatMapping{baseMapping{f}}
}

// intMapping maps integer values to exact integer store types.
type intMapping struct {
	baseMapping
}

// NewIntMapping creates a mapping for integer values.
func NewIntMapping(facets Facets) (Mapping, error) {
	if err := facets.Validate(); err != nil {
		return nil, err
	}
	return &intMapping{baseMapping{facets}}, nil
}

func (m *intMapping) GenerateSQLLiteral(value any) string {
	return renderLiteral(m.facets, value, func(v any) string {
		return fmt.Sprintf("%d", v)
	})
}

func (m *intMapping) CloneWithConverter(converter ValueConverter) Mapping {
	f := m.facets
	f.Converter = converter
	return &intMapping{baseMapping{f}}
}

// boolMapping maps booleans to the bit store type, rendering 1 and 0.
type boolMapping struct {
	baseMapping
}

// NewBoolMapping creates a mapping for bool values.
func NewBoolMapping(facets Facets) (Mapping, error) {
	if err := facets.Validate(); err != nil {
		return nil, err
	}
	return &boolMapping{baseMapping{facets}}, nil
}

func (m *boolMapping) GenerateSQLLiteral(value any) string {
	return renderLiteral(m.facets, value, func(v any) string {
		if b, ok := v.(bool); ok && b {
			return "1"
		}
		return "0"
	})
}

func (m *boolMapping) CloneWithConverter(converter ValueConverter) Mapping {
	f := m.facets
	f.Converter = converter
	return &boolMapping{baseMapping{f}}
}
