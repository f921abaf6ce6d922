// File: loader.go
// Title: Parameter File Loader
// Description: Reads parameter files in order, parses them and feeds the
//              resulting events to Assign and annotation capture. Missing
//              files, read failures and syntax errors stop loading.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parameters

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	mdwerror "github.com/msto63/ordt/foundation/core/error"
	mdwlog "github.com/msto63/ordt/foundation/core/log"
	"github.com/msto63/ordt/internal/annotate"
	"github.com/msto63/ordt/internal/extparms"
)

// StdinName is the file name that selects standard input.
const StdinName = "-"

const opLoad = "parameters.LoadParameters"

// LoadParameters applies the given parameter files in order; a later file
// overrides assignments of an earlier one. An empty list keeps the defaults
// and raises an advisory. The first file-level failure is returned and no
// further files are read; earlier files stay applied.
func (c *Config) LoadParameters(files []string) error {
	c.files = slices.Clone(files)

	if len(files) == 0 {
		c.report(SeverityAdvisory, mdwerror.CodeDefaultsUsed,
			"No parameters file specified.  Default or inline defined parameters will be used.", "", nil)
		return nil
	}

	timer := c.logger.StartTimer("load_parameters").WithField("files", len(files))
	for _, path := range files {
		if err := c.loadFile(path); err != nil {
			timer.StopWithError(err)
			return err
		}
	}
	timer.Stop()
	return nil
}

func (c *Config) loadFile(path string) error {
	c.logger.Info(fmt.Sprintf("reading parameters from %s...", path), mdwlog.Field("file", path))

	data, err := c.read(path)
	if err != nil {
		return err
	}

	file, err := c.parser.Parse(path, string(data))
	if err != nil {
		var syntaxErr *extparms.SyntaxError
		if errors.As(err, &syntaxErr) {
			return mdwerror.Wrap(err, "parameter file parser errors detected").
				WithCode(mdwerror.CodeSyntax).
				WithOperation(opLoad).
				WithDetail("file", path).
				WithDetail("errors", len(syntaxErr.Errors))
		}
		return mdwerror.Wrap(err, "parameter file rejected").
			WithCode(mdwerror.CodeIOError).
			WithOperation(opLoad).
			WithDetail("file", path)
	}

	c.Apply(file)
	return nil
}

// read returns the contents of path. The file is closed on every path out.
func (c *Config) read(path string) ([]byte, error) {
	var r io.Reader = c.stdin
	if path != StdinName {
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, mdwerror.Wrap(err, "parameter file not found").
					WithCode(mdwerror.CodeNotFound).
					WithOperation(opLoad).
					WithDetail("file", path)
			}
			return nil, mdwerror.Wrap(err, "parameter file could not be opened").
				WithCode(mdwerror.CodeIOError).
				WithOperation(opLoad).
				WithDetail("file", path)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, mdwerror.Wrap(err, "parameter file could not be read").
			WithCode(mdwerror.CodeIOError).
			WithOperation(opLoad).
			WithDetail("file", path)
	}
	return data, nil
}

// Apply feeds the events of a parsed file to Assign and annotation capture.
func (c *Config) Apply(file *extparms.File) {
	c.file = file.Source
	defer func() { c.file, c.line = "", 0 }()

	for e := range file.Events() {
		c.line = e.Line
		switch e.Kind {
		case extparms.EventAssign:
			c.Assign(e.Token(0), e.Token(2))
		case extparms.EventAnnotation:
			if cmd, ok := annotate.FromTokens(e.Token(0), e.Token(1), e.Token(3), e.Token(4), e.Token(5)); ok {
				c.AddAnnotation(cmd)
			}
		}
	}
}
