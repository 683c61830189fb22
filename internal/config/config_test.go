package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}
	if cfg.SourceExt != ".jack" || cfg.OutputExt != ".xml" || !cfg.Verify || cfg.Indent != "  " {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "jackal.toml", `
output_ext = ".tree"
emit_tokens = true
workers = 2
log_format = "json"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputExt != ".tree" || !cfg.EmitTokens || cfg.Workers != 2 || cfg.LogFormat != "json" {
		t.Errorf("Unexpected config %+v", cfg)
	}
	// Unset keys keep their defaults
	if cfg.SourceExt != ".jack" || !cfg.Verify || !cfg.Color {
		t.Errorf("Defaults were lost %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	t.Setenv("JACKAL_OUT", "/tmp/out")
	path := writeConfig(t, "jackal.yaml", `
indent: "\t"
verify: false
output_dir: $JACKAL_OUT/xml
log_level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Indent != "\t" || cfg.Verify || cfg.LogLevel != "debug" {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.OutputDir != "/tmp/out/xml" {
		t.Errorf("output_dir should be expanded, got %q", cfg.OutputDir)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name, content, msg string
	}{
		{"bad.toml", `source_ext = "jack"`, "source_ext must start with '.'"},
		{"same.toml", `output_ext = ".JACK"`, "output_ext must differ"},
		{"indent.yml", `indent: "xx"`, "indent may only hold"},
		{"level.toml", `log_level = "loud"`, "invalid log_level"},
		{"format.toml", `log_format = "xml"`, "log_format must be"},
		{"broken.toml", `workers = [`, "failed to parse config"},
		{"config.ini", `a=b`, "unsupported config format"},
	}
	for _, c := range cases {
		_, err := Load(writeConfig(t, c.name, c.content))
		if err == nil || !strings.Contains(err.Error(), c.msg) {
			t.Errorf("%s: expected error containing %q, got %v", c.name, c.msg, err)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Missing file should be reported, got %v", err)
	}
}
