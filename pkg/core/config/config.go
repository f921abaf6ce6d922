// ============================================================================
// ordt - Register Description Compiler
// ============================================================================
//
// Package:     config
// Description: Tool settings for ordt-parms, read from TOML or YAML
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/ordt/foundation/core/error"
	mdwlog "github.com/msto63/ordt/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the settings path
const EnvConfigPath = "ORDT_CONFIG"

// DefaultMaxFileSize is the parameter file size limit when none is configured
const DefaultMaxFileSize = 1 << 20

// Settings holds the complete tool configuration
type Settings struct {
	Log        LogSettings       `toml:"log" yaml:"log"`
	Parameters ParameterSettings `toml:"parameters" yaml:"parameters"`
}

// LogSettings holds logger settings
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	Name   string `toml:"name" yaml:"name"`
}

// ParameterSettings holds parameter loading settings
type ParameterSettings struct {
	// Files are loaded before any file given on the command line
	Files       []string `toml:"files" yaml:"files"`
	Strict      bool     `toml:"strict" yaml:"strict"`
	FailOnError bool     `toml:"fail_on_error" yaml:"fail_on_error"`
	MaxFileSize int      `toml:"max_file_size" yaml:"max_file_size"`
}

// Default returns settings with every default applied
func Default() *Settings {
	var s Settings
	s.applyDefaults()
	return &s
}

// Load loads settings from a TOML or YAML file, chosen by extension
func Load(path string) (*Settings, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, mdwerror.Wrap(err, "config file not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeIOError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var s Settings
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, parseFailure(err, path)
		}
	case ".toml", "":
		md, err := toml.Decode(string(content), &s)
		if err != nil {
			return nil, parseFailure(err, path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, mdwerror.Newf("unknown config key '%s'", undecoded[0].String()).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
	default:
		return nil, mdwerror.Newf("unsupported config format '%s'", ext).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	// Apply defaults
	s.applyDefaults()

	// Expand environment variables in file paths
	s.expandEnvVars()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFromEnv loads settings from ORDT_CONFIG or the first default location
// that exists. Without any settings file the defaults are returned.
func LoadFromEnv() (*Settings, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	home, _ := os.UserHomeDir()
	defaultPaths := []string{
		"./ordt.toml",
		"./ordt.yaml",
		"./configs/ordt.toml",
		filepath.Join(home, ".config/ordt/config.toml"),
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// Validate checks values the loaders cannot reject on their own
func (s *Settings) Validate() error {
	if _, err := mdwlog.ParseLevel(s.Log.Level); err != nil {
		return invalid(err, "log.level", s.Log.Level)
	}
	if _, err := mdwlog.ParseFormat(s.Log.Format); err != nil {
		return invalid(err, "log.format", s.Log.Format)
	}
	if s.Parameters.MaxFileSize < 0 {
		return mdwerror.Newf("max_file_size must not be negative (%d)", s.Parameters.MaxFileSize).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", "parameters.max_file_size")
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (s *Settings) applyDefaults() {
	if s.Log.Level == "" {
		s.Log.Level = "info"
	}
	if s.Log.Format == "" {
		s.Log.Format = "text"
	}
	if s.Log.Name == "" {
		s.Log.Name = "ordt-parms"
	}
	if s.Parameters.MaxFileSize == 0 {
		s.Parameters.MaxFileSize = DefaultMaxFileSize
	}
}

// expandEnvVars expands environment variables in configured paths
func (s *Settings) expandEnvVars() {
	for i, f := range s.Parameters.Files {
		s.Parameters.Files[i] = os.ExpandEnv(f)
	}
}

func parseFailure(err error, path string) error {
	return mdwerror.Wrap(err, "failed to parse config").
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Load").
		WithDetail("path", path)
}

func invalid(err error, key, value string) error {
	return mdwerror.Wrap(err, "invalid config value").
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}
