package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIOrigin == "" || cfg.Listen == "" {
		t.Errorf("defaults incomplete: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "larek.yaml")
	data := []byte("api_origin: https://larek.example\ncdn_origin: https://cdn.example\nlisten: \":9090\"\ndebug: true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIOrigin != "https://larek.example" || cfg.Listen != ":9090" || !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LAREK_API_ORIGIN", "https://override.example")
	t.Setenv("LAREK_DEBUG", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIOrigin != "https://override.example" {
		t.Errorf("APIOrigin = %q, env override not applied", cfg.APIOrigin)
	}
	if !cfg.Debug {
		t.Error("Debug override not applied")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file must fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("api_origin: [broken"), 0o600)
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML must fail")
	}
}
