package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	mdwerror "github.com/msto63/ordt/foundation/core/error"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	s := Default()

	if s.Log.Level != "info" {
		t.Errorf("Log.Level = %v, want info", s.Log.Level)
	}
	if s.Log.Format != "text" {
		t.Errorf("Log.Format = %v, want text", s.Log.Format)
	}
	if s.Log.Name != "ordt-parms" {
		t.Errorf("Log.Name = %v, want ordt-parms", s.Log.Name)
	}
	if s.Parameters.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("MaxFileSize = %v, want %v", s.Parameters.MaxFileSize, DefaultMaxFileSize)
	}
	if s.Parameters.Strict || s.Parameters.FailOnError || len(s.Parameters.Files) != 0 {
		t.Errorf("Parameters = %+v, want zero values", s.Parameters)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Default settings should be valid: %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	t.Setenv("ORDT_PARMS_DIR", "/work/parms")
	path := writeConfig(t, "ordt.toml", `
[log]
level = "debug"
format = "json"

[parameters]
files = ["$ORDT_PARMS_DIR/base.parms", "local.parms"]
strict = true
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Log.Level != "debug" || s.Log.Format != "json" {
		t.Errorf("Log = %+v", s.Log)
	}
	if s.Log.Name != "ordt-parms" {
		t.Errorf("default name not applied: %v", s.Log.Name)
	}
	if !s.Parameters.Strict || s.Parameters.FailOnError {
		t.Errorf("Parameters = %+v", s.Parameters)
	}
	want := []string{"/work/parms/base.parms", "local.parms"}
	if !slices.Equal(s.Parameters.Files, want) {
		t.Errorf("Files = %v, want %v", s.Parameters.Files, want)
	}
}

func TestLoad_YAML(t *testing.T) {
	for _, name := range []string{"ordt.yaml", "ordt.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, name, `
log:
  level: warn
parameters:
  files:
    - a.parms
  fail_on_error: true
  max_file_size: 4096
`)
			s, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if s.Log.Level != "warn" || s.Log.Format != "text" {
				t.Errorf("Log = %+v", s.Log)
			}
			if !s.Parameters.FailOnError || s.Parameters.MaxFileSize != 4096 {
				t.Errorf("Parameters = %+v", s.Parameters)
			}
			if !slices.Equal(s.Parameters.Files, []string{"a.parms"}) {
				t.Errorf("Files = %v", s.Parameters.Files)
			}
		})
	}
}

func TestLoad_EmptyYAML(t *testing.T) {
	s, err := Load(writeConfig(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Log.Level != "info" {
		t.Errorf("defaults not applied: %+v", s.Log)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    mdwerror.Code
	}{
		{"invalid toml", "bad.toml", "[log\nlevel = 1", mdwerror.CodeInvalidConfig},
		{"invalid yaml", "bad.yaml", "log: [unterminated", mdwerror.CodeInvalidConfig},
		{"unknown toml key", "extra.toml", "[log]\ncolour = \"red\"", mdwerror.CodeInvalidConfig},
		{"unknown yaml key", "extra.yaml", "log:\n  colour: red", mdwerror.CodeInvalidConfig},
		{"unsupported extension", "ordt.ini", "level=info", mdwerror.CodeInvalidConfig},
		{"invalid level", "level.toml", "[log]\nlevel = \"loud\"", mdwerror.CodeInvalidConfig},
		{"invalid format", "format.toml", "[log]\nformat = \"xml\"", mdwerror.CodeInvalidConfig},
		{"negative size", "size.toml", "[parameters]\nmax_file_size = -1", mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("code = %v, want %v", mdwerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("code = %v, want NOT_FOUND", mdwerror.GetCode(err))
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "env.toml", "[parameters]\nstrict = true")
	t.Setenv(EnvConfigPath, path)

	s, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if !s.Parameters.Strict {
		t.Error("settings from ORDT_CONFIG were not loaded")
	}
}

func TestLoadFromEnv_NoFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	s, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if s.Log.Level != "info" {
		t.Errorf("expected defaults, got %+v", s)
	}
}
