package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/ordt/foundation/core/log"
	"github.com/msto63/ordt/internal/parameters"
	"github.com/msto63/ordt/pkg/core/config"
	"github.com/msto63/ordt/pkg/core/logging"
)

// session is one loader run: settings, logger and the loaded parameters
type session struct {
	settings *config.Settings
	logger   *mdwlog.Logger
	recorder *parameters.Recorder
	parms    *parameters.Config
}

// newSession resolves settings, applies flag overrides and prepares an
// empty parameter configuration
func newSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	var (
		settings *config.Settings
		err      error
	)
	if opts.cfgFile != "" {
		settings, err = config.Load(opts.cfgFile)
	} else {
		settings, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		settings.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		settings.Log.Format = opts.logFormat
	}
	if flags.Changed("strict") {
		settings.Parameters.Strict = opts.strict
	}
	if flags.Changed("fail-on-error") {
		settings.Parameters.FailOnError = opts.failOnError
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewLogger(logging.LoggerConfig{
		Name:   settings.Log.Name,
		Level:  settings.Log.Level,
		Format: settings.Log.Format,
		Output: cmd.ErrOrStderr(),
	})

	recorder := parameters.NewRecorder(parameters.NewLogSink(logger))
	parms, err := parameters.New(parameters.Options{
		Strict:      settings.Parameters.Strict,
		Sink:        recorder,
		Logger:      logger,
		Stdin:       cmd.InOrStdin(),
		MaxFileSize: settings.Parameters.MaxFileSize,
	})
	if err != nil {
		return nil, err
	}

	return &session{
		settings: settings,
		logger:   logger,
		recorder: recorder,
		parms:    parms,
	}, nil
}

// load applies the configured files followed by args
func (s *session) load(args []string) error {
	files := make([]string, 0, len(s.settings.Parameters.Files)+len(args))
	files = append(files, s.settings.Parameters.Files...)
	files = append(files, args...)

	if err := s.parms.LoadParameters(files); err != nil {
		s.logger.LogError(err)
		return err
	}
	return nil
}

// verdict applies --fail-on-error to the recorded diagnostics
func (s *session) verdict() error {
	if !s.settings.Parameters.FailOnError {
		return nil
	}
	if n := s.recorder.Count(parameters.SeverityError); n > 0 {
		return validationFailure(n)
	}
	return nil
}
