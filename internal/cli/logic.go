package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirgroup/internal/dirgroup"
	"github.com/idelchi/dirgroup/internal/logging"
)

// runGroup executes the core grouping operation and prints the result.
func runGroup(cmd *cobra.Command, args []string, flags *scanFlags) error {
	req, err := flags.request(cmd, args)
	if err != nil {
		return err
	}

	log := logging.NewConsoleLogger(os.Stderr, flags.verbose)

	groups, err := dirgroup.Categorize(cmd.Context(), req, log)
	if err != nil {
		return err
	}

	switch flags.output {
	case "json":
		return PrintGroupsJSON(groups, os.Stdout)
	default:
		return PrintGroupsTable(groups, os.Stdout)
	}
}

// runSummary executes the parallel summary walk, with a live progress
// line on stderr when attached to a terminal.
func runSummary(cmd *cobra.Command, args []string, flags *scanFlags, topN int) error {
	req, err := flags.request(cmd, args)
	if err != nil {
		return err
	}

	log := logging.NewConsoleLogger(os.Stderr, flags.verbose)

	enableProgress := flags.output != "json" &&
		!flags.verbose &&
		isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progress func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progress = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	summary, err := dirgroup.Summarize(cmd.Context(), req, topN, progress, log)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch flags.output {
	case "json":
		return PrintSummaryJSON(summary, os.Stdout)
	default:
		return PrintSummaryTable(summary, os.Stdout)
	}
}
