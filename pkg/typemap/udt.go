package typemap

import "fmt"

// UDTMapping is implemented by mappings for provider user-defined types. The
// UDT type name identifies the underlying UDT contract; the store type is the
// surface column-type text. They start out identical, but a sized clone may
// diverge the store type while the UDT type name stays fixed.
type UDTMapping interface {
	Mapping
	UDTTypeName() string
}

// UDTPattern binds a fully qualified type name suffix to a provider UDT name.
type UDTPattern struct {
	// Suffix is the trailing identifier matched against a type's fully
	// qualified name, e.g. "SqlGeography".
	Suffix string

	// UDTTypeName is the provider named type, e.g. "geography".
	UDTTypeName string
}

// DefaultUDTPatterns returns the built-in UDT name resolution rules.
func DefaultUDTPatterns() []UDTPattern {
	return []UDTPattern{
		{Suffix: "SqlHierarchyId", UDTTypeName: "hierarchyid"},
		{Suffix: "SqlGeography", UDTTypeName: "geography"},
		{Suffix: "SqlGeometry", UDTTypeName: "geometry"},
	}
}

type udtMapping struct {
	baseMapping
	udtTypeName string
}

// NewUDTMapping creates a mapping for a provider user-defined type. When the
// facets carry no store type, the UDT type name doubles as the store type,
// which is the canonical form.
func NewUDTMapping(facets Facets, udtTypeName string) (Mapping, error) {
	if facets.StoreType == "" {
		facets.StoreType = udtTypeName
	}
	if err := facets.Validate(); err != nil {
		return nil, err
	}
	return &udtMapping{baseMapping{facets}, udtTypeName}, nil
}

func (m *udtMapping) UDTTypeName() string {
	return m.udtTypeName
}

func (m *udtMapping) GenerateSQLLiteral(value any) string {
	return renderLiteral(m.facets, value, func(v any) string {
		return quoteString(fmt.Sprint(v))
	})
}

// CloneWithSize replaces the store type text and size. The UDT type name is
// retained unchanged even when the store type diverges from it.
func (m *udtMapping) CloneWithSize(storeType string, size int) Mapping {
	f := m.facets
	f.StoreType = storeType
	f.Size = intFacet(size)
	return &udtMapping{baseMapping{f}, m.udtTypeName}
}

func (m *udtMapping) CloneWithConverter(converter ValueConverter) Mapping {
	f := m.facets
	f.Converter = converter
	return &udtMapping{baseMapping{f}, m.udtTypeName}
}
