// Package typemap implements a relational type mapping engine. It resolves
// host value types or store type names to immutable mapping descriptors that
// know the column's store type, its size and precision facets, and how to
// render values of the type as SQL literal text.
package typemap

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	tmerrors "github.com/Itfly/typemap/internal/errors"
	"github.com/Itfly/typemap/internal/observability"
)

// storeTypeFactory builds a mapping from the lexical form of a store type
// name. A fresh mapping comes back on every call so callers can rely on
// reference identity.
type storeTypeFactory func(p parsedStoreType) (Mapping, error)

// Registry resolves host value types and store type names to mappings. It is
// immutable after construction, so concurrent lookups require no locking.
// Build one at provider-configuration time and keep it for the process.
type Registry struct {
	byGoType  map[reflect.Type]Mapping
	factories map[string]storeTypeFactory
	udtRules  []UDTPattern
	stats     *observability.LookupStats
}

// Option customizes a Registry under construction.
type Option func(*Registry)

// WithUDTPatterns appends UDT name resolution rules after the built-in ones.
func WithUDTPatterns(patterns ...UDTPattern) Option {
	return func(r *Registry) {
		r.udtRules = append(r.udtRules, patterns...)
	}
}

// NewRegistry creates a registry with the built-in mapping table and the
// default UDT patterns.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byGoType:  make(map[reflect.Type]Mapping),
		factories: make(map[string]storeTypeFactory),
		udtRules:  DefaultUDTPatterns(),
		stats:     observability.NewLookupStats(),
	}
	r.registerBuiltins()
	r.registerStoreTypes()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FindMapping resolves a host type identity to a mapping. Resolution order:
// the built-in table by runtime type, then the UDT name pattern table against
// the fully qualified name. The mapping returned from a UDT match has its
// ClrType bound to the exact identity passed in. Fails with a not-supported
// error when neither matches.
func (r *Registry) FindMapping(t *TypeIdentity) (Mapping, error) {
	if t == nil {
		return nil, tmerrors.NewMappingError(tmerrors.CodeTypeNotSupported, "nil type identity")
	}

	if gt := t.GoType(); gt != nil {
		if m, ok := r.byGoType[gt]; ok {
			r.stats.Record("clr:"+t.FullName(), observability.OutcomeBuiltin)
			return m, nil
		}
	}

	for _, rule := range r.udtRules {
		if strings.HasSuffix(t.FullName(), rule.Suffix) {
			r.stats.Record("clr:"+t.FullName(), observability.OutcomeUDT)
			return NewUDTMapping(Facets{
				ClrType: t,
				DbType:  dbTypeFacet(DbTypeUDT),
			}, rule.UDTTypeName)
		}
	}

	r.stats.Record("clr:"+t.FullName(), observability.OutcomeMiss)
	return nil, tmerrors.NewMappingError(tmerrors.CodeTypeNotSupported,
		fmt.Sprintf("no mapping for type %s", t.FullName()))
}

// FindMappingByStoreType resolves a store type name such as "nvarchar(max)"
// or "decimal(18, 2)" to a mapping. Matching is case-insensitive; the
// Unicode, size and fixed-length facets come from the name's lexical form.
// Fails with a not-supported error for unknown or malformed names.
func (r *Registry) FindMappingByStoreType(name string) (Mapping, error) {
	p, err := parseStoreType(name)
	if err != nil {
		r.stats.Record("store:"+strings.ToLower(strings.TrimSpace(name)), observability.OutcomeMiss)
		return nil, err
	}

	factory, ok := r.factories[p.Base]
	if !ok {
		r.stats.Record("store:"+p.Base, observability.OutcomeMiss)
		return nil, tmerrors.NewMappingError(tmerrors.CodeStoreTypeNotSupported,
			fmt.Sprintf("no mapping for store type %q", name))
	}

	m, err := factory(p)
	if err != nil {
		r.stats.Record("store:"+p.Base, observability.OutcomeMiss)
		return nil, err
	}
	r.stats.Record("store:"+p.Base, observability.OutcomeStoreType)
	return m, nil
}

// RegistryStats is a point-in-time view of a registry's lookup counters.
type RegistryStats struct {
	Hits   int64
	Misses int64
	Top    []observability.KeyStats
}

// Stats returns a snapshot of the registry's lookup statistics.
func (r *Registry) Stats() RegistryStats {
	hits, misses := r.stats.Totals()
	return RegistryStats{
		Hits:   hits,
		Misses: misses,
		Top:    r.stats.GetTopKeys(10),
	}
}

// mustMapping unwraps a constructor result for the built-in table, where the
// facets are known valid.
func mustMapping(m Mapping, err error) Mapping {
	if err != nil {
		panic(err)
	}
	return m
}

// Canonical identities for the built-in table. Store-type resolution reuses
// these so repeated lookups agree on the identity they report.
var (
	bytesIdentity    = TypeOf[[]byte]()
	stringIdentity   = TypeOf[string]()
	timeIdentity     = TypeOf[time.Time]()
	offsetIdentity   = TypeOf[DateTimeOffset]()
	durationIdentity = TypeOf[time.Duration]()
	float64Identity  = TypeOf[float64]()
	float32Identity  = TypeOf[float32]()
	int64Identity    = TypeOf[int64]()
	intIdentity      = TypeOf[int]()
	int32Identity    = TypeOf[int32]()
	int16Identity    = TypeOf[int16]()
	uint8Identity    = TypeOf[uint8]()
	boolIdentity     = TypeOf[bool]()
	guidIdentity     = TypeOf[uuid.UUID]()
)

// registerBuiltins fills the by-runtime-type table. Entries are precomputed
// once; lookups hand out the shared immutable instances.
func (r *Registry) registerBuiltins() {
	add := func(id *TypeIdentity, m Mapping) {
		r.byGoType[id.GoType()] = m
	}

	add(bytesIdentity, mustMapping(NewBinaryMapping(Facets{
		StoreType: "varbinary(max)",
		ClrType:   bytesIdentity,
		DbType:    dbTypeFacet(DbTypeBinary),
	})))
	add(stringIdentity, mustMapping(NewStringMapping(Facets{
		StoreType: "nvarchar(max)",
		ClrType:   stringIdentity,
		DbType:    dbTypeFacet(DbTypeString),
		Unicode:   true,
	})))
	add(timeIdentity, mustMapping(NewDateTimeMapping(Facets{
		StoreType: "datetime2",
		ClrType:   timeIdentity,
		DbType:    dbTypeFacet(DbTypeDateTime),
	}, "")))
	add(offsetIdentity, mustMapping(NewDateTimeOffsetMapping(Facets{
		StoreType: "datetimeoffset",
		ClrType:   offsetIdentity,
		DbType:    dbTypeFacet(DbTypeDateTimeOffset),
	})))
	add(durationIdentity, mustMapping(NewTimeMapping(Facets{
		StoreType: "time",
		ClrType:   durationIdentity,
		DbType:    dbTypeFacet(DbTypeTime),
	})))
	add(float64Identity, mustMapping(NewFloatMapping(Facets{
		StoreType: "float",
		ClrType:   float64Identity,
		DbType:    dbTypeFacet(DbTypeFloat64),
	})))
	add(float32Identity, mustMapping(NewFloatMapping(Facets{
		StoreType: "real",
		ClrType:   float32Identity,
		DbType:    dbTypeFacet(DbTypeFloat32),
	})))
	add(int64Identity, mustMapping(NewIntMapping(Facets{
		StoreType: "bigint",
		ClrType:   int64Identity,
		DbType:    dbTypeFacet(DbTypeInt64),
	})))
	add(intIdentity, mustMapping(NewIntMapping(Facets{
		StoreType: "bigint",
		ClrType:   intIdentity,
		DbType:    dbTypeFacet(DbTypeInt64),
	})))
	add(int32Identity, mustMapping(NewIntMapping(Facets{
		StoreType: "int",
		ClrType:   int32Identity,
		DbType:    dbTypeFacet(DbTypeInt32),
	})))
	add(int16Identity, mustMapping(NewIntMapping(Facets{
		StoreType: "smallint",
		ClrType:   int16Identity,
		DbType:    dbTypeFacet(DbTypeInt16),
	})))
	add(uint8Identity, mustMapping(NewIntMapping(Facets{
		StoreType: "tinyint",
		ClrType:   uint8Identity,
		DbType:    dbTypeFacet(DbTypeInt8),
	})))
	add(boolIdentity, mustMapping(NewBoolMapping(Facets{
		StoreType: "bit",
		ClrType:   boolIdentity,
		DbType:    dbTypeFacet(DbTypeBool),
	})))
	add(guidIdentity, mustMapping(NewGUIDMapping(Facets{
		StoreType: "uniqueidentifier",
		ClrType:   guidIdentity,
		DbType:    dbTypeFacet(DbTypeGUID),
	})))
}

// registerStoreTypes fills the store-type name table. Each factory derives
// the mapping's facets from the name's lexical form.
func (r *Registry) registerStoreTypes() {
	stringFactory := func(unicode, fixed bool) storeTypeFactory {
		return func(p parsedStoreType) (Mapping, error) {
			return NewStringMapping(Facets{
				StoreType:   p.Raw,
				ClrType:     stringIdentity,
				DbType:      dbTypeFacet(DbTypeString),
				Size:        p.sizeFacet(),
				Unicode:     unicode,
				FixedLength: fixed,
			})
		}
	}
	r.factories["nvarchar"] = stringFactory(true, false)
	r.factories["nchar"] = stringFactory(true, true)
	r.factories["ntext"] = stringFactory(true, false)
	r.factories["varchar"] = stringFactory(false, false)
	r.factories["char"] = stringFactory(false, true)
	r.factories["text"] = stringFactory(false, false)

	binaryFactory := func(fixed bool) storeTypeFactory {
		return func(p parsedStoreType) (Mapping, error) {
			return NewBinaryMapping(Facets{
				StoreType:   p.Raw,
				ClrType:     bytesIdentity,
				DbType:      dbTypeFacet(DbTypeBinary),
				Size:        p.sizeFacet(),
				FixedLength: fixed,
			})
		}
	}
	r.factories["varbinary"] = binaryFactory(false)
	r.factories["binary"] = binaryFactory(true)
	r.factories["image"] = binaryFactory(false)

	rowVersionFactory := func(p parsedStoreType) (Mapping, error) {
		return NewBinaryMapping(Facets{
			StoreType:   p.Raw,
			ClrType:     bytesIdentity,
			DbType:      dbTypeFacet(DbTypeBinary),
			Size:        intFacet(8),
			FixedLength: true,
		})
	}
	r.factories["rowversion"] = rowVersionFactory
	// timestamp is the deprecated synonym for rowversion, not a temporal type
	r.factories["timestamp"] = rowVersionFactory

	dateTimeFactory := func(layout string, db DbType) storeTypeFactory {
		return func(p parsedStoreType) (Mapping, error) {
			var precision *int
			if len(p.Args) > 0 {
				precision = intFacet(p.Args[0])
			}
			return NewDateTimeMapping(Facets{
				StoreType: p.Raw,
				ClrType:   timeIdentity,
				DbType:    dbTypeFacet(db),
				Precision: precision,
			}, layout)
		}
	}
	r.factories["datetime"] = dateTimeFactory("", DbTypeDateTime)
	r.factories["datetime2"] = dateTimeFactory("", DbTypeDateTime)
	r.factories["smalldatetime"] = dateTimeFactory("", DbTypeDateTime)
	r.factories["date"] = dateTimeFactory(dateLayout, DbTypeDate)

	r.factories["datetimeoffset"] = func(p parsedStoreType) (Mapping, error) {
		var precision *int
		if len(p.Args) > 0 {
			precision = intFacet(p.Args[0])
		}
		return NewDateTimeOffsetMapping(Facets{
			StoreType: p.Raw,
			ClrType:   offsetIdentity,
			DbType:    dbTypeFacet(DbTypeDateTimeOffset),
			Precision: precision,
		})
	}

	r.factories["time"] = func(p parsedStoreType) (Mapping, error) {
		var precision *int
		if len(p.Args) > 0 {
			precision = intFacet(p.Args[0])
		}
		return NewTimeMapping(Facets{
			StoreType: p.Raw,
			ClrType:   durationIdentity,
			DbType:    dbTypeFacet(DbTypeTime),
			Precision: precision,
		})
	}

	r.factories["float"] = func(p parsedStoreType) (Mapping, error) {
		var precision *int
		if len(p.Args) > 0 {
			precision = intFacet(p.Args[0])
		}
		return NewFloatMapping(Facets{
			StoreType: p.Raw,
			ClrType:   float64Identity,
			DbType:    dbTypeFacet(DbTypeFloat64),
			Precision: precision,
		})
	}
	r.factories["real"] = func(p parsedStoreType) (Mapping, error) {
		return NewFloatMapping(Facets{
			StoreType: p.Raw,
			ClrType:   float32Identity,
			DbType:    dbTypeFacet(DbTypeFloat32),
		})
	}

	decimalFactory := func(p parsedStoreType) (Mapping, error) {
		var precision, scale *int
		if len(p.Args) > 0 {
			precision = intFacet(p.Args[0])
		}
		if len(p.Args) > 1 {
			scale = intFacet(p.Args[1])
		}
		return NewFloatMapping(Facets{
			StoreType: p.Raw,
			ClrType:   float64Identity,
			DbType:    dbTypeFacet(DbTypeDecimal),
			Precision: precision,
			Scale:     scale,
		})
	}
	r.factories["decimal"] = decimalFactory
	r.factories["numeric"] = decimalFactory
	r.factories["money"] = decimalFactory
	r.factories["smallmoney"] = decimalFactory

	intFactory := func(id *TypeIdentity, db DbType) storeTypeFactory {
		return func(p parsedStoreType) (Mapping, error) {
			return NewIntMapping(Facets{
				StoreType: p.Raw,
				ClrType:   id,
				DbType:    dbTypeFacet(db),
			})
		}
	}
	r.factories["bigint"] = intFactory(int64Identity, DbTypeInt64)
	r.factories["int"] = intFactory(int32Identity, DbTypeInt32)
	r.factories["smallint"] = intFactory(int16Identity, DbTypeInt16)
	r.factories["tinyint"] = intFactory(uint8Identity, DbTypeInt8)

	r.factories["bit"] = func(p parsedStoreType) (Mapping, error) {
		return NewBoolMapping(Facets{
			StoreType: p.Raw,
			ClrType:   boolIdentity,
			DbType:    dbTypeFacet(DbTypeBool),
		})
	}

	r.factories["uniqueidentifier"] = func(p parsedStoreType) (Mapping, error) {
		return NewGUIDMapping(Facets{
			StoreType: p.Raw,
			ClrType:   guidIdentity,
			DbType:    dbTypeFacet(DbTypeGUID),
		})
	}

	for _, rule := range DefaultUDTPatterns() {
		rule := rule
		r.factories[rule.UDTTypeName] = func(p parsedStoreType) (Mapping, error) {
			return NewUDTMapping(Facets{
				ClrType: NamedType(rule.Suffix),
				DbType:  dbTypeFacet(DbTypeUDT),
			}, rule.UDTTypeName)
		}
	}
}
