// Package main implements the typemap-check binary.
// It renders a literal for every built-in store type with a sample value and
// evaluates each one as a SELECT against an in-process SQLite database, as a
// self-check that the rendered text is syntactically valid SQL.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Itfly/typemap/internal/config"
	"github.com/Itfly/typemap/pkg/typemap"
)

// sample pairs a store type name with a value of the mapped kind.
type sample struct {
	storeType string
	value     any
}

func samples() []sample {
	ts := time.Date(2015, 3, 12, 13, 36, 37, 371_000_000, time.UTC)
	return []sample{
		{"varbinary(max)", []byte{0xDA, 0x7A}},
		{"binary(8)", []byte{0, 1, 2, 3, 4, 5, 6, 7}},
		{"rowversion", []byte{0, 0, 0, 0, 0, 0, 0, 1}},
		// nvarchar is absent: SQLite does not accept the N'...' literal form
		{"varchar(max)", "A Non-Unicode String"},
		{"char(10)", "it's"},
		{"datetime2", ts},
		{"date", ts},
		{"datetimeoffset", typemap.DateTimeOffset(ts.In(time.FixedZone("", -7*3600)))},
		{"time", 13*time.Hour + 36*time.Minute + 37*time.Second},
		{"float", 3.1415},
		{"real", float32(2.5)},
		{"decimal(18, 2)", 1234.56},
		{"bigint", int64(1 << 40)},
		{"int", int64(-42)},
		{"bit", true},
		{"uniqueidentifier", uuid.MustParse("4695f1f0-9c90-46c2-9db8-47f3b9c478d5")},
	}
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "", "Path to configuration file (YAML or JSON)")
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

	db, err := sql.Open(cfg.Check.Driver, cfg.Check.DSN)
	if err != nil {
		log.Fatalf("Failed to open check database: %v", err)
	}
	defer db.Close()

	registry := typemap.NewRegistry()

	failed := 0
	for _, s := range samples() {
		mapping, err := registry.FindMappingByStoreType(s.storeType)
		if err != nil {
			log.Printf("check: %-20s resolution failed: %v", s.storeType, err)
			failed++
			continue
		}

		literal := mapping.GenerateSQLLiteral(s.value)
		var echoed any
		if err := db.QueryRow("SELECT " + literal).Scan(&echoed); err != nil {
			log.Printf("check: %-20s FAIL literal %s: %v", s.storeType, literal, err)
			failed++
			continue
		}
		fmt.Printf("check: %-20s ok  %s\n", s.storeType, literal)
	}

	if failed > 0 {
		log.Printf("check: %d literal(s) failed", failed)
		os.Exit(1)
	}
	fmt.Println("check: all literals evaluated")
}
