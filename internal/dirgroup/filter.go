package dirgroup

// Filter reports whether a file should be kept.
type Filter func(FileRecord) bool

// filtersFor builds the active filter chain for a request: extension
// pass/skip first, then size bounds, then the modification threshold.
// When both pass and skip sets are given, pass wins and skip is ignored.
func filtersFor(req Request) []Filter {
	var chain []Filter

	if pass := normalizeSet(req.PassExtensions); pass != nil {
		chain = append(chain, func(rec FileRecord) bool {
			_, ok := pass[rec.Ext]

			return ok
		})
	} else if skip := normalizeSet(req.SkipExtensions); skip != nil {
		chain = append(chain, func(rec FileRecord) bool {
			_, ok := skip[rec.Ext]

			return !ok
		})
	}

	if req.MinSize != nil {
		minSize := *req.MinSize

		chain = append(chain, func(rec FileRecord) bool { return rec.Size >= minSize })
	}

	if req.MaxSize != nil {
		maxSize := *req.MaxSize

		chain = append(chain, func(rec FileRecord) bool { return rec.Size <= maxSize })
	}

	if req.ModifiedSince != nil {
		since := *req.ModifiedSince

		chain = append(chain, func(rec FileRecord) bool { return !rec.ModTime.Before(since) })
	}

	return chain
}

// keep evaluates the chain in order, short-circuiting on the first
// rejection.
func keep(chain []Filter, rec FileRecord) bool {
	for _, filter := range chain {
		if !filter(rec) {
			return false
		}
	}

	return true
}
