package dirgroup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeExt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already normalized", input: ".txt", expected: ".txt"},
		{name: "uppercase", input: ".TXT", expected: ".txt"},
		{name: "missing dot", input: "jpg", expected: ".jpg"},
		{name: "missing dot uppercase", input: "JPG", expected: ".jpg"},
		{name: "surrounding whitespace", input: " .Md ", expected: ".md"},
		{name: "empty stays empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, NormalizeExt(tt.input))
		})
	}
}

func TestFiltersFor(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Hour)

	rec := func(ext string, size int64, mod time.Time) FileRecord {
		return FileRecord{Path: "f" + ext, Ext: ext, Size: size, ModTime: mod}
	}

	tests := []struct {
		name    string
		request Request
		record  FileRecord
		kept    bool
	}{
		{
			name:    "empty request keeps everything",
			request: Request{},
			record:  rec(".txt", 0, now),
			kept:    true,
		},
		{
			name:    "size exactly min is kept",
			request: Request{MinSize: int64Ptr(100)},
			record:  rec(".txt", 100, now),
			kept:    true,
		},
		{
			name:    "size below min is dropped",
			request: Request{MinSize: int64Ptr(100)},
			record:  rec(".txt", 99, now),
			kept:    false,
		},
		{
			name:    "size exactly max is kept",
			request: Request{MaxSize: int64Ptr(100)},
			record:  rec(".txt", 100, now),
			kept:    true,
		},
		{
			name:    "size above max is dropped",
			request: Request{MaxSize: int64Ptr(100)},
			record:  rec(".txt", 101, now),
			kept:    false,
		},
		{
			name:    "modified exactly at threshold is kept",
			request: Request{ModifiedSince: &now},
			record:  rec(".txt", 1, now),
			kept:    true,
		},
		{
			name:    "modified before threshold is dropped",
			request: Request{ModifiedSince: &now},
			record:  rec(".txt", 1, earlier),
			kept:    false,
		},
		{
			name:    "skip set drops matching extension",
			request: Request{SkipExtensions: []string{".log"}},
			record:  rec(".log", 1, now),
			kept:    false,
		},
		{
			name:    "skip set keeps other extensions",
			request: Request{SkipExtensions: []string{".log"}},
			record:  rec(".txt", 1, now),
			kept:    true,
		},
		{
			name:    "skip set can target files without extension",
			request: Request{SkipExtensions: []string{""}},
			record:  rec("", 1, now),
			kept:    false,
		},
		{
			name:    "set entries are taken literally",
			request: Request{SkipExtensions: []string{"'.log'"}},
			record:  rec(".log", 1, now),
			kept:    true,
		},
		{
			name:    "pass set keeps only matching extension",
			request: Request{PassExtensions: []string{".pdf"}},
			record:  rec(".txt", 1, now),
			kept:    false,
		},
		{
			name:    "pass overrides skip",
			request: Request{PassExtensions: []string{".log"}, SkipExtensions: []string{".log"}},
			record:  rec(".log", 1, now),
			kept:    true,
		},
		{
			name:    "all filters must pass",
			request: Request{PassExtensions: []string{".txt"}, MinSize: int64Ptr(10)},
			record:  rec(".txt", 5, now),
			kept:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := filtersFor(tt.request)
			require.Equal(t, tt.kept, keep(chain, tt.record))
		})
	}
}
