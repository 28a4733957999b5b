package dirgroup

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/idelchi/dirgroup/internal/logging"
)

// DefaultProgressInterval is the default cadence of progress callbacks.
const DefaultProgressInterval = 500 * time.Millisecond

// DefaultTopN is the default number of largest files tracked.
const DefaultTopN = 10

// ExtStat aggregates the files sharing one extension.
type ExtStat struct {
	// Count is the number of files with this extension.
	Count int `json:"count"`
	// Size is the cumulative size in bytes.
	Size int64 `json:"size"`
}

// FileStat is one file path with its size.
type FileStat struct {
	// Path is the file path, in slash format.
	Path string `json:"path"`
	// Size is the size in bytes.
	Size int64 `json:"size"`
}

// Summary holds aggregate statistics for one walk.
type Summary struct {
	// FileCount is the number of files that passed the filter chain.
	FileCount int64 `json:"file_count"`
	// TotalBytes is the cumulative size of those files.
	TotalBytes int64 `json:"total_bytes"`
	// ExtStats maps normalized extensions to their statistics.
	ExtStats map[string]ExtStat `json:"ext_stats"`
	// TopFiles contains the N largest files, largest first.
	TopFiles []FileStat `json:"top_files"`
	// SkippedCount is the number of entries skipped due to errors.
	SkippedCount int64 `json:"skipped_count"`
	// Elapsed is the wall time taken by the walk.
	Elapsed time.Duration `json:"elapsed"`
	// TopN is the number of top files tracked.
	TopN int `json:"top_n"`
}

// collector aggregates statistics from concurrent fastwalk callbacks.
// All access goes through the mutex since fastwalk invokes the walk
// callback from multiple goroutines.
type collector struct {
	mu         sync.Mutex
	topN       int
	extStats   map[string]ExtStat
	files      []FileStat
	fileCount  int64
	totalBytes int64
	skipped    int64
}

func newCollector(topN int) *collector {
	return &collector{
		topN:     topN,
		extStats: make(map[string]ExtStat),
	}
}

func (c *collector) add(rec FileRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fileCount++
	c.totalBytes += rec.Size

	stat := c.extStats[rec.Ext]
	stat.Count++
	stat.Size += rec.Size
	c.extStats[rec.Ext] = stat

	// Collect everything, sort and trim in finalize.
	c.files = append(c.files, FileStat{Path: rec.Path, Size: rec.Size})
}

func (c *collector) addSkipped() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.skipped++
}

// snapshot returns the current file count and byte total for progress
// reporting.
func (c *collector) snapshot() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.totalBytes
}

// finalize produces the Summary: the largest topN files sorted largest
// first, with paths converted to slash format.
func (c *collector) finalize() *Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	sort.Slice(c.files, func(i, j int) bool {
		return c.files[i].Size > c.files[j].Size
	})

	top := c.files
	if len(top) > c.topN {
		top = top[:c.topN]
	}

	topFiles := make([]FileStat, len(top))
	for i, f := range top {
		topFiles[i] = FileStat{Path: filepath.ToSlash(f.Path), Size: f.Size}
	}

	return &Summary{
		FileCount:    c.fileCount,
		TotalBytes:   c.totalBytes,
		ExtStats:     c.extStats,
		TopFiles:     topFiles,
		SkippedCount: c.skipped,
		TopN:         c.topN,
	}
}

// reportProgress invokes hook(files, bytes) on each tick until ctx is done.
func reportProgress(ctx context.Context, c *collector, hook func(files, bytes int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Summarize walks the tree at req.Path in parallel and aggregates
// statistics over the files that pass the same filter chain Categorize
// uses. Extension keys are normalized identically.
//
// Aggregation order is irrelevant to the output, so the walk uses
// fastwalk for speed. Unreadable entries are counted and logged, never
// fatal. Progress updates, if a hook is given, arrive on a ticker until
// the walk finishes.
func Summarize(ctx context.Context, req Request, topN int, progress func(files, bytes int64), log logging.Logger) (*Summary, error) {
	if log == nil {
		log = logging.NewNullLogger()
	}

	if err := validate(&req); err != nil {
		log.Error("invalid request: %v", err)

		return nil, err
	}

	if topN <= 0 {
		topN = DefaultTopN
	}

	chain := filtersFor(req)
	coll := newCollector(topN)

	// Child context so the progress goroutine stops when the walk does.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reportProgress(ctx, coll, progress, 0)

	log.Info("summarizing %s (%d filters active)", req.Path, len(chain))

	start := time.Now()

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	walkErr := fastwalk.Walk(conf, req.Path, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			coll.addSkipped()
			log.Error("skipping %s: %v", path, err)

			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if entry.IsDir() || !entry.Type().IsRegular() {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			coll.addSkipped()
			log.Error("skipping %s: %v", path, err)

			return nil
		}

		rec := FileRecord{
			Path:    path,
			Ext:     extOf(entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}

		if keep(chain, rec) {
			coll.add(rec)
		}

		return nil
	})
	if walkErr != nil {
		log.Error("summary of %s aborted: %v", req.Path, walkErr)

		return nil, walkErr
	}

	summary := coll.finalize()
	summary.Elapsed = time.Since(start)

	log.Info("summarized %s: %d files, %d bytes, %d entries skipped",
		req.Path, summary.FileCount, summary.TotalBytes, summary.SkippedCount)

	return summary, nil
}
