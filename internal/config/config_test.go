package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.Data.CacheTTL != 10*time.Minute {
		t.Errorf("ttl = %v", cfg.Data.CacheTTL)
	}
	if !cfg.LLM.Mock {
		t.Error("mock must default on so the service runs without credentials")
	}
	if cfg.UseSheets() {
		t.Error("sheets should be off without a spreadsheet id")
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: "9090"
data_source:
  spreadsheet_id: sheet-123
  range: sheet1!A:H
  cache_ttl: 5m
llm:
  model: test-model
  mock: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9090" || cfg.Data.SpreadsheetID != "sheet-123" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Data.CacheTTL != 5*time.Minute {
		t.Errorf("ttl = %v", cfg.Data.CacheTTL)
	}
	if !cfg.UseSheets() {
		t.Error("sheets source should be selected")
	}
	if cfg.LLM.Mock {
		t.Error("mock disabled in file")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"9090\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "7070")
	t.Setenv("LLM_MODEL", "override-model")
	t.Setenv("USE_MOCK_LLM", "false")
	t.Setenv("CACHE_TTL", "90s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "7070" {
		t.Errorf("env should win: port = %q", cfg.Port)
	}
	if cfg.LLM.Model != "override-model" {
		t.Errorf("model = %q", cfg.LLM.Model)
	}
	if cfg.LLM.Mock {
		t.Error("USE_MOCK_LLM=false should disable mock")
	}
	if cfg.Data.CacheTTL != 90*time.Second {
		t.Errorf("ttl = %v", cfg.Data.CacheTTL)
	}
}

func TestMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed config must error")
	}
}
