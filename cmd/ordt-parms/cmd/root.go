package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand
type rootOptions struct {
	cfgFile     string
	logLevel    string
	logFormat   string
	strict      bool
	failOnError bool
}

// NewRootCommand builds the ordt-parms command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ordt-parms",
		Short: "ordt control parameter loader",
		Long: `ordt-parms loads ordt parameter files the way the register compiler
does and shows the result.

Files are applied in order; a later file overrides an earlier one.
Use "-" to read a parameter file from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "settings file, TOML or YAML (default: $ORDT_CONFIG or ./ordt.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format (json, text, logfmt, console)")
	flags.BoolVar(&opts.strict, "strict", false, "report unknown parameter names as errors")
	flags.BoolVar(&opts.failOnError, "fail-on-error", false, "exit with status 2 when a parameter value is rejected")

	rootCmd.AddCommand(
		newShowCmd(opts),
		newAnnotationsCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command line and reports a failure on stderr
func Execute() error {
	rootCmd := NewRootCommand()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
