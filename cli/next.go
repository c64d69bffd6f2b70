package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/petal-labs/cronspec"
)

// NewNextCmd creates the "next" subcommand.
func NewNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next <expression>",
		Short: "Print upcoming occurrences of a schedule expression",
		Args:  cobra.ExactArgs(1),
		RunE:  runNext,
	}

	cmd.Flags().String("from", "", "Reference time, RFC 3339 (default: now)")
	cmd.Flags().IntP("count", "n", 1, "Number of occurrences to print")
	cmd.Flags().String("format", "text", "Output format: text | json")

	return cmd
}

func runNext(cmd *cobra.Command, args []string) error {
	expr := args[0]
	fromFlag, _ := cmd.Flags().GetString("from")
	count, _ := cmd.Flags().GetInt("count")
	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()

	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	from := time.Now()
	if fromFlag != "" {
		parsed, err := time.Parse(time.RFC3339, fromFlag)
		if err != nil {
			return fmt.Errorf("parsing --from: %w", err)
		}
		from = parsed
	}

	sched, err := cronspec.Parse(expr)
	if err != nil {
		return exitError(exitParse, "%v", err)
	}
	slog.Debug("schedule parsed", "expr", sched.String(), "from", from)

	times := make([]time.Time, 0, count)
	for ts := range sched.Times(from) {
		times = append(times, ts)
		if len(times) == count {
			break
		}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(times)
	case "text":
		for _, ts := range times {
			fmt.Fprintln(out, ts.Format(time.RFC3339))
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
