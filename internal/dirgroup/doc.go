// Package dirgroup groups files under a directory tree by extension.
//
// The core operation walks the tree in deterministic lexical order,
// runs each regular file through an optional filter chain (size range,
// modification threshold, extension allow/deny sets) and returns a
// mapping from normalized extension to the surviving paths. A separate
// summary operation uses fastwalk for a fast parallel walk that
// aggregates counts, sizes and the largest files over the same filters.
package dirgroup
