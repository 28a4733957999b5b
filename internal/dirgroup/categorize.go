package dirgroup

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/idelchi/dirgroup/internal/logging"
)

// validate checks the request before any traversal begins and
// normalizes the path in place.
func validate(req *Request) error {
	if req.Path == "" {
		req.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	req.Path = filepath.Clean(req.Path)

	info, err := os.Stat(req.Path)
	if err != nil {
		return fmt.Errorf("%w: accessing %q: %v", ErrNotDirectory, req.Path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrNotDirectory, req.Path)
	}

	if req.MinSize != nil && *req.MinSize < 0 {
		return fmt.Errorf("%w: min size %d is negative", ErrInvalidSizeRange, *req.MinSize)
	}

	if req.MaxSize != nil && *req.MaxSize < 0 {
		return fmt.Errorf("%w: max size %d is negative", ErrInvalidSizeRange, *req.MaxSize)
	}

	if req.MinSize != nil && req.MaxSize != nil && *req.MinSize > *req.MaxSize {
		return fmt.Errorf("%w: min size %d exceeds max size %d", ErrInvalidSizeRange, *req.MinSize, *req.MaxSize)
	}

	return nil
}

// Categorize walks the tree at req.Path and groups surviving regular
// files by normalized extension.
//
// The walk is single-threaded and visits entries in lexical order per
// directory, so the result is deterministic for an unchanged tree.
// Unreadable entries are skipped with a logged warning; an error on the
// root itself is fatal. The result is built fresh per call and nothing
// is shared between invocations, so concurrent calls are safe.
//
// Cancellation is checked per entry; on cancellation the partial result
// is discarded and ctx.Err() is returned.
func Categorize(ctx context.Context, req Request, log logging.Logger) (Result, error) {
	if log == nil {
		log = logging.NewNullLogger()
	}

	if err := validate(&req); err != nil {
		log.Error("invalid request: %v", err)

		return nil, err
	}

	chain := filtersFor(req)

	log.Info("scanning %s (%d filters active)", req.Path, len(chain))

	result := make(Result)

	var found, skipped int

	walkErr := filepath.WalkDir(req.Path, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			// The root failing is fatal; anything below it is skipped.
			if path == req.Path {
				return err
			}

			skipped++
			log.Error("skipping %s: %v", path, err)

			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		// Regular files only: directories, symlinks and special files
		// never appear in the result.
		if entry.IsDir() || !entry.Type().IsRegular() {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			skipped++
			log.Error("skipping %s: %v", path, err)

			return nil
		}

		rec := FileRecord{
			Path:    path,
			Ext:     extOf(entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}

		if !keep(chain, rec) {
			log.Verbose("filtered out %s", path)

			return nil
		}

		log.Verbose("found %s (ext %q)", path, rec.Ext)

		result[rec.Ext] = append(result[rec.Ext], path)
		found++

		return nil
	})
	if walkErr != nil {
		log.Error("scan of %s aborted: %v", req.Path, walkErr)

		return nil, walkErr
	}

	log.Info("scanned %s: %d files in %d extensions, %d entries skipped", req.Path, found, len(result), skipped)

	return result, nil
}
