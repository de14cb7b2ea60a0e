package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/calvintwells/dialplan-validator/dialplan"
	"github.com/calvintwells/dialplan-validator/lintconfig"
	"github.com/spf13/cobra"
)

// errValidationFailed signals a non-zero exit after the diagnostics and
// summary have already been written.
var errValidationFailed = errors.New("validation failed")

func newCheckCmd() *cobra.Command {
	var configPath string
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <extensions.conf>",
		Short: "Validate a dialplan file and report every syntax defect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := lintconfig.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			if strict {
				cfg.Strict = true
			}

			path := args[0]
			result, ok := validateOnce(path)
			if !ok {
				cmd.SilenceErrors = true
				return errValidationFailed
			}

			if !result.OK() || (cfg.Strict && result.Warnings > 0) {
				cmd.SilenceErrors = true
				return errValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a tool configuration file")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")

	return cmd
}

// validateOnce runs one validation pass over path, writing defects to stderr
// and the summary to stdout. It returns false when the source is unreadable.
func validateOnce(path string) (*dialplan.Result, bool) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot open file '%s'\n", path)
		return nil, false
	}
	defer f.Close()

	result, err := dialplan.Validate(f, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, false
	}

	printSummary(os.Stdout, path, result)
	return result, true
}

func printSummary(w io.Writer, path string, result *dialplan.Result) {
	fmt.Fprintln(w)
	if result.Clean() {
		fmt.Fprintf(w, "✓ Syntax valid: %s\n", path)
	} else {
		fmt.Fprintf(w, "Validation complete: %d error(s), %d warning(s)\n", result.Errors, result.Warnings)
	}
}
