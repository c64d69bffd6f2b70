package cli

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petal-labs/cronspec"
	"github.com/petal-labs/cronspec/loader"
)

// NewValidateCmd creates the "validate" subcommand.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file|expression>",
		Short: "Validate a schedules file or a single expression",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	cmd.Flags().Bool("quiet", false, "Suppress the per-schedule listing")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	arg := args[0]
	quiet, _ := cmd.Flags().GetBool("quiet")
	out := cmd.OutOrStdout()

	// Four whitespace-separated tokens read as an expression, not a path.
	if len(strings.Fields(arg)) == 4 {
		if _, err := cronspec.Parse(arg); err != nil {
			return exitError(exitParse, "%v", err)
		}
		if !quiet {
			fmt.Fprintf(out, "%s: ok\n", arg)
		}
		return nil
	}

	schedules, err := loader.Load(arg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return exitError(exitFileNotFound, "file not found: %s", arg)
		}
		var derr *loader.DiagnosticError
		if errors.As(err, &derr) {
			for _, d := range derr.Diagnostics {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", d)
			}
			return exitError(exitParse, "validation failed")
		}
		return err
	}

	if !quiet {
		for _, name := range slices.Sorted(maps.Keys(schedules)) {
			fmt.Fprintf(out, "%s: %s\n", name, schedules[name])
		}
	}
	fmt.Fprintf(out, "%d schedules ok\n", len(schedules))
	return nil
}
