// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, defaults, environment overrides and discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12

package config

import (
	"os"
	"path/filepath"
	"testing"

	errcerr "github.com/msto63/errc/foundation/core/error"
)

const tomlContent = `
[default_error]
mode = "half"

[output]
precision = 3
plain = true

[log]
level = "debug"
`

const yamlContent = `
default_error:
  mode: zero
output:
  precision: 7
tolerance: 1.5e-6
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "errc.toml", tomlContent)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetString("default_error.mode"); got != "half" {
		t.Errorf("GetString(default_error.mode) = %q, want half", got)
	}
	if got := cfg.GetInt("output.precision"); got != 3 {
		t.Errorf("GetInt(output.precision) = %d, want 3", got)
	}
	if !cfg.GetBool("output.plain") {
		t.Error("GetBool(output.plain) = false, want true")
	}
	if cfg.Format() != FormatTOML {
		t.Errorf("Format() = %v, want toml", cfg.Format())
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "errc.yml", yamlContent)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetString("default_error.mode"); got != "zero" {
		t.Errorf("GetString(default_error.mode) = %q, want zero", got)
	}
	if got := cfg.GetInt("output.precision"); got != 7 {
		t.Errorf("GetInt(output.precision) = %d, want 7", got)
	}
	if got := cfg.GetFloat("tolerance"); got != 1.5e-6 {
		t.Errorf("GetFloat(tolerance) = %v, want 1.5e-6", got)
	}
	if cfg.Format() != FormatYAML {
		t.Errorf("Format() = %v, want yaml", cfg.Format())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.toml", "[output\nprecision = ")

	tests := []struct {
		name string
		path string
		code errcerr.Code
	}{
		{"empty path", "  ", errcerr.CodeMissingConfig},
		{"missing file", filepath.Join(dir, "nope.toml"), errcerr.CodeNotFound},
		{"directory", dir, errcerr.CodeNotFound},
		{"parse failure", broken, errcerr.CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if !errcerr.HasCode(err, tt.code) {
				t.Errorf("Load() code = %v, want %v", errcerr.GetCode(err), tt.code)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "errc.toml", tomlContent)

	cfg, err := LoadWithOptions(path, LoadOptions{
		Defaults: map[string]interface{}{
			"output.precision": 5,
			"output.width":     12,
			"log.format":       "text",
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetInt("output.precision"); got != 3 {
		t.Errorf("file value overridden by default: precision = %d", got)
	}
	if got := cfg.GetInt("output.width"); got != 12 {
		t.Errorf("GetInt(output.width) = %d, want 12", got)
	}
	if got := cfg.GetString("log.format"); got != "text" {
		t.Errorf("GetString(log.format) = %q, want text", got)
	}
	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("sibling key lost: log.level = %q", got)
	}
}

func TestEnvOverride(t *testing.T) {
	path := writeFile(t, t.TempDir(), "errc.toml", tomlContent)
	t.Setenv("ERRC_DEFAULT_ERROR_MODE", "zero")
	t.Setenv("ERRC_OUTPUT_PRECISION", "9")

	cfg, err := LoadWithOptions(path, LoadOptions{EnvPrefix: "errc"})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetString("default_error.mode"); got != "zero" {
		t.Errorf("GetString() = %q, want env value zero", got)
	}
	if got := cfg.GetInt("output.precision"); got != 9 {
		t.Errorf("GetInt() = %d, want env value 9", got)
	}

	withoutPrefix, _ := Load(path)
	if got := withoutPrefix.GetString("default_error.mode"); got != "half" {
		t.Errorf("env applied without prefix: %q", got)
	}
}

func TestEnvKey(t *testing.T) {
	if got := EnvKey("errc", "default_error.mode"); got != "ERRC_DEFAULT_ERROR_MODE" {
		t.Errorf("EnvKey() = %q", got)
	}
	if got := EnvKey("", "log.level"); got != "LOG_LEVEL" {
		t.Errorf("EnvKey() = %q", got)
	}
}

func TestSetAndHas(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatAuto)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if cfg.Has("output.width") {
		t.Error("Has(output.width) = true before Set")
	}
	cfg.Set("output.width", 20)
	if got := cfg.GetInt("output.width"); got != 20 {
		t.Errorf("GetInt(output.width) = %d, want 20", got)
	}
	if got := cfg.GetInt("output.precision"); got != 3 {
		t.Errorf("Set clobbered sibling: precision = %d", got)
	}
	if got := cfg.GetString("missing.key", "fallback"); got != "fallback" {
		t.Errorf("GetString() default = %q", got)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	empty := t.TempDir()
	writeFile(t, dir, "errc.yaml", yamlContent)

	opts := DiscoveryOptions{Paths: []string{empty, dir}}

	path, err := FindConfigFile(opts)
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if path != filepath.Join(dir, "errc.yaml") {
		t.Errorf("FindConfigFile() = %q", path)
	}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if got := cfg.GetInt("output.precision"); got != 7 {
		t.Errorf("GetInt(output.precision) = %d, want 7", got)
	}
}

func TestDiscoverOptional(t *testing.T) {
	opts := DiscoveryOptions{
		Paths:    []string{t.TempDir()},
		Defaults: map[string]interface{}{"output.precision": 5},
	}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if got := cfg.GetInt("output.precision"); got != 5 {
		t.Errorf("GetInt(output.precision) = %d, want default 5", got)
	}

	opts.Required = true
	_, err = Discover(opts)
	if !errcerr.HasCode(err, errcerr.CodeNotFound) {
		t.Errorf("Discover(required) error = %v, want NOT_FOUND", err)
	}
}

func TestListPossibleConfigFiles(t *testing.T) {
	got := ListPossibleConfigFiles(DiscoveryOptions{Paths: []string{"a"}})
	want := []string{
		filepath.Join("a", "errc.toml"),
		filepath.Join("a", "errc.yaml"),
		filepath.Join("a", "errc.yml"),
	}
	if len(got) != len(want) {
		t.Fatalf("ListPossibleConfigFiles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
