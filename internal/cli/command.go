// Package cli wires the dirgroup operations to the command line.
package cli

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirgroup/internal/dirgroup"
)

// allowedOutputs lists the valid values for the output flag.
//
//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json"}

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute builds the command tree and runs it.
func (c CLI) Execute() error {
	return c.NewRootCommand().Execute()
}

// NewRootCommand creates the root command, which groups files by
// extension, and attaches the summary subcommand.
func (c CLI) NewRootCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "dirgroup [flags] [path]",
		Short: "Group files under a directory tree by extension",
		Long: heredoc.Doc(`
			dirgroup walks a directory tree and groups regular files by
			extension, applying optional filters along the way.

			Extensions are compared case-insensitively and reported
			lower-cased with their leading dot; files without an
			extension are grouped under "". Filters: a size range
			(--min-size/--max-size, inclusive bounds), a modification
			threshold (--modified-since, older files are dropped) and
			extension sets (--skip to exclude, --pass to exclusively
			include; --pass overrides --skip when both are given).

			Defaults to the current directory if no path is specified.
		`),
		Version:      c.version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroup(cmd, args, flags)
		},
	}

	flags.register(cmd)

	cmd.AddCommand(newSummaryCommand())

	return cmd
}

// newSummaryCommand creates the summary subcommand.
func newSummaryCommand() *cobra.Command {
	flags := &scanFlags{}

	var topN int

	cmd := &cobra.Command{
		Use:   "summary [flags] [path]",
		Short: "Aggregate size statistics instead of listing files",
		Long: heredoc.Doc(`
			Walks the tree in parallel and reports aggregate statistics
			for the files that pass the filter flags: per-extension
			counts and sizes, the largest files, and totals.
		`),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, args, flags, topN)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&topN, "top", "t", dirgroup.DefaultTopN, "Number of largest files to display")

	return cmd
}

// scanFlags holds the filter flags shared by the group and summary
// commands.
type scanFlags struct {
	minSize       string
	maxSize       string
	modifiedSince string
	skip          []string
	pass          []string
	output        string
	verbose       bool
	configFile    string
}

// register adds the shared flags to cmd.
func (f *scanFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVar(&f.minSize, "min-size", "", "Minimum file size (e.g. 1KB)")
	flags.StringVar(&f.maxSize, "max-size", "", "Maximum file size (e.g. 10MB)")
	flags.StringVar(&f.modifiedSince, "modified-since", "",
		"Drop files modified before this time (RFC 3339 or YYYY-MM-DD)")
	flags.StringSliceVar(&f.skip, "skip", nil, "Extensions to exclude (e.g. .log,.tmp)")
	flags.StringSliceVar(&f.pass, "pass", nil, "Only include these extensions; overrides --skip")
	flags.StringVarP(&f.output, "output", "o", "table", "Output format: table or json")
	flags.BoolVar(&f.verbose, "verbose", false, "Enable per-file debug logging")
	flags.StringVar(&f.configFile, "config", "", "YAML file with filter defaults")

	flags.SortFlags = false
}

// request resolves the config file, flags and positional path into a
// scan request.
func (f *scanFlags) request(cmd *cobra.Command, args []string) (dirgroup.Request, error) {
	req := dirgroup.Request{Path: "."}

	if len(args) > 0 {
		req.Path = args[0]
	}

	if f.configFile != "" {
		cfg, err := LoadConfig(f.configFile)
		if err != nil {
			return req, err
		}

		f.apply(cmd, cfg)
	}

	f.output = strings.ToLower(f.output)
	if !slices.Contains(allowedOutputs, f.output) {
		return req, fmt.Errorf("invalid output format %q: must be one of %v", f.output, allowedOutputs)
	}

	if f.minSize != "" {
		minSize, err := parseSize("min-size", f.minSize)
		if err != nil {
			return req, err
		}

		req.MinSize = &minSize
	}

	if f.maxSize != "" {
		maxSize, err := parseSize("max-size", f.maxSize)
		if err != nil {
			return req, err
		}

		req.MaxSize = &maxSize
	}

	if f.modifiedSince != "" {
		since, err := parseTime(f.modifiedSince)
		if err != nil {
			return req, err
		}

		req.ModifiedSince = &since
	}

	req.SkipExtensions = stripQuotes(f.skip)
	req.PassExtensions = stripQuotes(f.pass)

	return req, nil
}

// stripQuotes drops shell quoting that survives flag parsing
// (e.g. --skip "'.log'").
func stripQuotes(exts []string) []string {
	if len(exts) == 0 {
		return nil
	}

	out := make([]string, len(exts))
	for i, ext := range exts {
		out[i] = strings.Trim(ext, `'"`)
	}

	return out
}

// parseSize parses a human-readable size flag into bytes, rejecting
// values that do not fit an int64.
func parseSize(name, value string) (int64, error) {
	size, err := humanize.ParseBytes(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}

	if size > math.MaxInt64 {
		return 0, fmt.Errorf("invalid %s: %s is too large", name, value)
	}

	return int64(size), nil
}

// parseTime accepts RFC 3339 timestamps or plain dates.
func parseTime(value string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}

	ts, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC 3339 or YYYY-MM-DD", value)
	}

	return ts, nil
}
