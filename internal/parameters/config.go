// File: config.go
// Title: Parameter Configuration Context
// Description: Config owns everything parameter loading produces: the
//              generic registry, the enumerated parameters, captured
//              annotation commands and the list of loaded files. It is built
//              once by the caller and handed to every consumer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parameters

import (
	"fmt"
	"io"
	"os"
	"slices"

	mdwerror "github.com/msto63/ordt/foundation/core/error"
	mdwlog "github.com/msto63/ordt/foundation/core/log"
	"github.com/msto63/ordt/internal/annotate"
	"github.com/msto63/ordt/internal/extparms"
)

// Options configures a Config.
type Options struct {
	// Strict reports assignments to unknown names as validation errors.
	// By default they are ignored silently.
	Strict bool

	// Sink receives diagnostics. Defaults to a LogSink on Logger.
	Sink Sink

	Logger *mdwlog.Logger

	// Stdin is read for the file name "-". Defaults to os.Stdin.
	Stdin io.Reader

	// MaxFileSize limits the size of a single parameter file in bytes.
	MaxFileSize int
}

// Config is the parameter configuration of one compiler run. It is not safe
// for concurrent mutation.
type Config struct {
	registry    *Registry
	legacy      legacyState
	annotations []annotate.Command
	files       []string

	strict bool
	sink   Sink
	logger *mdwlog.Logger
	stdin  io.Reader
	parser *extparms.Parser

	// position of the assignment being applied, for diagnostics
	file string
	line int
}

// New returns a Config holding the compiled-in defaults.
func New(opts Options) (*Config, error) {
	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	logger = logger.WithField("component", "parameters")

	sink := opts.Sink
	if sink == nil {
		sink = NewLogSink(logger)
	}
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	parser, err := extparms.New(extparms.Options{Logger: logger, MaxInputLength: opts.MaxFileSize})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create parameter file parser").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("parameters.New")
	}

	return &Config{
		registry: newRegistry(),
		legacy:   defaultLegacyState(),
		strict:   opts.Strict,
		sink:     sink,
		logger:   logger,
		stdin:    stdin,
		parser:   parser,
	}, nil
}

// Registry returns the generic parameter registry.
func (c *Config) Registry() *Registry {
	return c.registry
}

// Strict reports whether unknown names are reported.
func (c *Config) Strict() bool {
	return c.strict
}

// Assign is the single entry point for parameter assignments. The registry
// is probed first, then the legacy resolver; other names are ignored unless
// the Config is strict. Problems are reported to the sink, never returned.
func (c *Config) Assign(name, value string) {
	if p, ok := c.registry.Lookup(name); ok {
		if err := p.Set(value); err != nil {
			c.report(SeverityError, mdwerror.GetCode(err), err.Error(), name, err)
			return
		}
		c.logger.Trace("parameter assigned", mdwlog.Fields{"parameter": name, "value": value})
		if msg := p.Advisory(); msg != "" {
			c.report(SeverityAdvisory, mdwerror.CodeNonStandard, msg, name, nil)
		}
		return
	}

	if handler, ok := legacyHandlers[name]; ok {
		if msg := handler(&c.legacy, value); msg != "" {
			c.report(SeverityAdvisory, mdwerror.CodeDeprecated, msg, name, nil)
		}
		return
	}

	if c.strict {
		c.report(SeverityError, mdwerror.CodeUnknownParameter,
			fmt.Sprintf("unknown control parameter '%s'", name), name, nil)
	}
}

// AddAnnotation appends an annotation command.
func (c *Config) AddAnnotation(cmd annotate.Command) {
	c.annotations = append(c.annotations, cmd)
}

// Annotations returns the captured annotation commands in capture order.
func (c *Config) Annotations() []annotate.Command {
	return slices.Clone(c.annotations)
}

// ParameterFiles returns the file list last passed to LoadParameters.
func (c *Config) ParameterFiles() []string {
	return slices.Clone(c.files)
}

func (c *Config) report(severity Severity, code mdwerror.Code, message, parameter string, err error) {
	c.sink.Report(Diagnostic{
		Severity:  severity,
		Code:      code,
		Message:   message,
		Parameter: parameter,
		File:      c.file,
		Line:      c.line,
		Err:       err,
	})
}
