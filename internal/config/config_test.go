package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Provider != "sqlserver" {
		t.Errorf("provider = %q, want sqlserver", cfg.Provider)
	}
	if cfg.Check.Driver != "sqlite3" {
		t.Errorf("check driver = %q, want sqlite3", cfg.Check.Driver)
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typemap.yaml")
	data := `provider: custom
udt_patterns:
  - suffix: SqlVector
    type_name: vector
check:
  driver: sqlite3
  dsn: ":memory:"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Provider != "custom" {
		t.Errorf("provider = %q, want custom", cfg.Provider)
	}
	if len(cfg.UDTPatterns) != 1 || cfg.UDTPatterns[0].TypeName != "vector" {
		t.Errorf("udt patterns not loaded: %+v", cfg.UDTPatterns)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate: %v", err)
	}
}

func TestLoadFromFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typemap.json")
	data := `{"provider": "json-provider"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Provider != "json-provider" {
		t.Errorf("provider = %q, want json-provider", cfg.Provider)
	}
	// Defaults survive partial files
	if cfg.Check.Driver != "sqlite3" {
		t.Errorf("check driver = %q, want default sqlite3", cfg.Check.Driver)
	}
}

func TestLoadFromFileUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typemap.toml")
	if err := os.WriteFile(path, []byte("provider='x'"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TYPEMAP_PROVIDER", "env-provider")
	t.Setenv("TYPEMAP_CHECK_DSN", "file:check.db")

	cfg := DefaultConfig()
	LoadFromEnv(cfg)

	if cfg.Provider != "env-provider" {
		t.Errorf("provider = %q, want env-provider", cfg.Provider)
	}
	if cfg.Check.DSN != "file:check.db" {
		t.Errorf("dsn = %q, want file:check.db", cfg.Check.DSN)
	}
}

func TestValidateErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty provider should fail validation")
	}

	cfg = DefaultConfig()
	cfg.UDTPatterns = []UDTPatternConfig{{Suffix: "", TypeName: "vector"}}
	if err := cfg.Validate(); err == nil {
		t.Error("empty suffix should fail validation")
	}

	cfg = DefaultConfig()
	cfg.UDTPatterns = []UDTPatternConfig{{Suffix: "SqlVector", TypeName: ""}}
	if err := cfg.Validate(); err == nil {
		t.Error("empty type name should fail validation")
	}

	cfg = DefaultConfig()
	cfg.Check.Driver = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty check driver should fail validation")
	}
}
