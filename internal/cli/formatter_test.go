package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirgroup/internal/dirgroup"
)

func TestPrintGroupsTable(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer

	groups := dirgroup.Result{
		".txt": {"dir/a.txt", "dir/sub/b.txt"},
		"":     {"dir/noext"},
	}

	require.NoError(t, PrintGroupsTable(groups, &buf))

	out := buf.String()
	require.Contains(t, out, `""`)
	require.Contains(t, out, ".txt")
	require.Contains(t, out, "dir/a.txt")
	require.Contains(t, out, "dir/sub/b.txt")
	require.Contains(t, out, "dir/noext")
	require.Contains(t, out, "3 files in 2 extensions")
}

func TestPrintGroupsJSON(t *testing.T) {
	var buf bytes.Buffer

	groups := dirgroup.Result{".log": {"x/y.log"}}

	require.NoError(t, PrintGroupsJSON(groups, &buf))

	var decoded map[string][]string

	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, map[string][]string{".log": {"x/y.log"}}, decoded)
}

func TestPrintSummaryTable(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer

	summary := &dirgroup.Summary{
		FileCount:  3,
		TotalBytes: 850,
		ExtStats: map[string]dirgroup.ExtStat{
			".txt": {Count: 2, Size: 600},
			".log": {Count: 1, Size: 250},
		},
		TopFiles: []dirgroup.FileStat{
			{Path: "dir/big.txt", Size: 500},
			{Path: "dir/sub/mid.log", Size: 250},
		},
		SkippedCount: 1,
		Elapsed:      time.Second,
		TopN:         2,
	}

	require.NoError(t, PrintSummaryTable(summary, &buf))

	out := buf.String()
	require.Contains(t, out, "Extensions:")
	// Largest cumulative size listed first.
	require.Less(t, bytes.Index(buf.Bytes(), []byte(".txt")), bytes.Index(buf.Bytes(), []byte(".log")))
	require.Contains(t, out, "2 files, 600 B (70.6%)")
	require.Contains(t, out, "'dir/big.txt'")
	require.Contains(t, out, "Total files:")
	require.Contains(t, out, "850 B (850 bytes)")
	require.Contains(t, out, "Skipped entries:")
	require.Contains(t, out, "Elapsed:")
}
