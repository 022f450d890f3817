package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if diff := cmp.Diff([]int{2019, 2020, 2021, 2022, 2023}, cfg.YearList()); diff != "" {
		t.Errorf("YearList mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOverlaysDefault(t *testing.T) {
	cfg, err := Parse([]byte(`
seed: 7
years:
  start: 2015
log:
  format: json
`))
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Seed = 7
	want.Years.Start = 2015
	want.Log.Format = "json"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
	if len(cfg.YearList()) != 9 {
		t.Errorf("YearList = %v, want 2015..2023", cfg.YearList())
	}
}

func TestParseCollectsErrors(t *testing.T) {
	_, err := Parse([]byte(`
years: {start: 2023, end: 2019}
horizon: 0
log: {level: loud, format: xml}
output: html
`))
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"years", "horizon", "log.level", "log.format", "output"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestParseBadYAML(t *testing.T) {
	if _, err := Parse([]byte("seed: [")); err == nil {
		t.Error("expected YAML error")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dashboard.yaml")
	if err := os.WriteFile(path, []byte("horizon: 5\noutput: markdown\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Horizon != 5 || cfg.Output != "markdown" {
		t.Errorf("Load = %+v", cfg)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadExampleProject(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "examples", "default", "dashboard.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 2024 {
		t.Errorf("Seed = %d, want 2024", cfg.Seed)
	}
	if cfg.Catalog != "" {
		t.Errorf("Catalog = %q, want built-in", cfg.Catalog)
	}
}
