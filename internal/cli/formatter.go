package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/idelchi/dirgroup/internal/dirgroup"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// extLabel makes the empty extension visible in table output.
func extLabel(ext string) string {
	if ext == "" {
		return `""`
	}

	return ext
}

// PrintGroupsJSON outputs the extension mapping in JSON format.
func PrintGroupsJSON(groups dirgroup.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintGroupsTable outputs the extension mapping as a table, one block
// per extension with its files in traversal order.
func PrintGroupsTable(groups dirgroup.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	exts := make([]string, 0, len(groups))
	for ext := range groups {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	heading := color.New(color.FgCyan, color.Bold)
	total := 0

	for _, ext := range exts {
		paths := groups[ext]
		total += len(paths)

		fmt.Fprintf(w, "%s\t%d files\n", heading.Sprint(extLabel(ext)), len(paths))

		for _, path := range paths {
			fmt.Fprintf(w, "  %s\t\n", filepath.ToSlash(path))
		}
	}

	fmt.Fprintf(w, "\nTotal:\t%d files in %d extensions\n", total, len(exts))

	return w.Flush()
}

// PrintSummaryJSON outputs summary statistics in JSON format.
func PrintSummaryJSON(summary *dirgroup.Summary, writer io.Writer) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintSummaryTable outputs summary statistics in human-readable table
// format: extensions by cumulative size, the largest files, and totals.
func PrintSummaryTable(summary *dirgroup.Summary, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)
	heading := color.New(color.Bold)

	pct := func(size int64) float64 {
		if summary.TotalBytes == 0 {
			return 0
		}

		return 100.0 * float64(size) / float64(summary.TotalBytes)
	}

	fmt.Fprintf(w, "%s\t\t\n", heading.Sprint("Extensions:"))

	exts := make([]string, 0, len(summary.ExtStats))
	for ext := range summary.ExtStats {
		exts = append(exts, ext)
	}

	// Largest cumulative size first, ties broken lexically.
	sort.Slice(exts, func(i, j int) bool {
		left, right := summary.ExtStats[exts[i]], summary.ExtStats[exts[j]]
		if left.Size != right.Size {
			return left.Size > right.Size
		}

		return exts[i] < exts[j]
	})

	for i, ext := range exts {
		stat := summary.ExtStats[ext]
		fmt.Fprintf(w, "  %d) %s:\t%d files, %s (%.1f%%)\n",
			i+1, extLabel(ext), stat.Count,
			humanize.IBytes(uint64(stat.Size)), pct(stat.Size)) //nolint:gosec // Sizes are non-negative
	}

	fmt.Fprintf(w, "\n%s\t\t\n", heading.Sprint("Top files:"))

	for i, file := range summary.TopFiles {
		fmt.Fprintf(w, "  %d) '%s'\t%s (%.1f%%)\n",
			i+1, file.Path,
			humanize.IBytes(uint64(file.Size)), pct(file.Size)) //nolint:gosec // Sizes are non-negative
	}

	fmt.Fprintf(w, "\n%s\t\t\n", heading.Sprint("Stats:"))
	fmt.Fprintf(w, "Total files:\t%d\n", summary.FileCount)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(summary.TotalBytes)), summary.TotalBytes) //nolint:gosec // Sizes are non-negative

	if summary.SkippedCount > 0 {
		fmt.Fprintf(w, "Skipped entries:\t%d\n", summary.SkippedCount)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", summary.Elapsed)

	return w.Flush()
}
