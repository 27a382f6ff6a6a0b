// Package main implements the typemap binary.
// It resolves a store type name or a fully qualified type name against the
// mapping registry and prints the resolved facets, optionally rendering a
// value as SQL literal text.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Itfly/typemap/internal/config"
	"github.com/Itfly/typemap/pkg/typemap"
)

func main() {
	var (
		configFile string
		storeType  string
		typeName   string
		value      string
		showStats  bool
	)

	flag.StringVar(&configFile, "config", "", "Path to configuration file (YAML or JSON)")
	flag.StringVar(&storeType, "store-type", "", "Store type name to resolve, e.g. 'nvarchar(max)'")
	flag.StringVar(&typeName, "type", "", "Fully qualified type name to resolve, e.g. 'Microsoft.SqlServer.Types.SqlGeography'")
	flag.StringVar(&value, "value", "", "Value to render as a SQL literal with the resolved mapping")
	flag.BoolVar(&showStats, "stats", false, "Print registry lookup statistics before exiting")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "typemap - relational type mapping resolver\n\n")
		fmt.Fprintf(os.Stderr, "Usage: typemap [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  typemap --store-type 'nvarchar(max)' --value 'A Unicode String'\n")
		fmt.Fprintf(os.Stderr, "  typemap --store-type 'varbinary(16)' --value 0xDA7A\n")
		fmt.Fprintf(os.Stderr, "  typemap --type Microsoft.SqlServer.Types.SqlGeography\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  TYPEMAP_PROVIDER   Provider label used in output\n")
	}
	flag.Parse()

	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.LoadFromFile(configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	config.LoadFromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	registry := buildRegistry(cfg)

	var (
		mapping typemap.Mapping
		err     error
	)
	switch {
	case storeType != "":
		mapping, err = registry.FindMappingByStoreType(storeType)
	case typeName != "":
		mapping, err = registry.FindMapping(typemap.NamedType(typeName))
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("Resolution failed: %v", err)
	}

	printMapping(cfg.Provider, mapping)

	if value != "" {
		v, err := parseValue(mapping, value)
		if err != nil {
			log.Fatalf("Failed to parse value: %v", err)
		}
		fmt.Printf("literal:      %s\n", mapping.GenerateSQLLiteral(v))
	}

	if showStats {
		stats := registry.Stats()
		fmt.Printf("lookups:      %d hits, %d misses\n", stats.Hits, stats.Misses)
	}
}

// buildRegistry constructs the registry from config, appending any extra UDT
// patterns after the built-in rules.
func buildRegistry(cfg *config.Config) *typemap.Registry {
	patterns := make([]typemap.UDTPattern, 0, len(cfg.UDTPatterns))
	for _, p := range cfg.UDTPatterns {
		patterns = append(patterns, typemap.UDTPattern{
			Suffix:      p.Suffix,
			UDTTypeName: p.TypeName,
		})
	}
	return typemap.NewRegistry(typemap.WithUDTPatterns(patterns...))
}

func printMapping(provider string, m typemap.Mapping) {
	fmt.Printf("provider:     %s\n", provider)
	fmt.Printf("store_type:   %s\n", m.StoreType())
	fmt.Printf("clr_type:     %s\n", m.ClrType())
	if db, ok := m.DbType(); ok {
		fmt.Printf("db_type:      %s\n", db)
	}
	if size, ok := m.Size(); ok {
		fmt.Printf("size:         %d\n", size)
	}
	if precision, ok := m.Precision(); ok {
		fmt.Printf("precision:    %d\n", precision)
	}
	if scale, ok := m.Scale(); ok {
		fmt.Printf("scale:        %d\n", scale)
	}
	fmt.Printf("unicode:      %v\n", m.Unicode())
	fmt.Printf("fixed_length: %v\n", m.FixedLength())
	if udt, ok := m.(typemap.UDTMapping); ok {
		fmt.Printf("udt_type:     %s\n", udt.UDTTypeName())
	}
}

// parseValue converts the command line text into the value kind the mapping
// renders.
func parseValue(m typemap.Mapping, s string) (any, error) {
	db, ok := m.DbType()
	if !ok {
		return s, nil
	}

	switch db {
	case typemap.DbTypeBinary:
		return hex.DecodeString(strings.TrimPrefix(strings.ToLower(s), "0x"))
	case typemap.DbTypeBool:
		return strconv.ParseBool(s)
	case typemap.DbTypeInt8, typemap.DbTypeInt16, typemap.DbTypeInt32, typemap.DbTypeInt64:
		return strconv.ParseInt(s, 10, 64)
	case typemap.DbTypeFloat32, typemap.DbTypeFloat64, typemap.DbTypeDecimal:
		return strconv.ParseFloat(s, 64)
	case typemap.DbTypeDate, typemap.DbTypeDateTime:
		return parseTime(s)
	case typemap.DbTypeDateTimeOffset:
		t, err := parseTime(s)
		if err != nil {
			return nil, err
		}
		return typemap.DateTimeOffset(t), nil
	case typemap.DbTypeTime:
		return time.ParseDuration(s)
	case typemap.DbTypeGUID:
		return uuid.Parse(s)
	default:
		return s, nil
	}
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time value %q", s)
}
