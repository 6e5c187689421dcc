package extract

import "github.com/cory-johannsen/warpgraph/internal/mapdata"

// Source loads a map corpus from a format-specific layout.
//
// Precondition: the configured corpus paths must exist and be readable.
// Postcondition: returns a non-nil Corpus plus a (possibly empty) slice of
// warning strings for recoverable issues (e.g. files whose names resolve to
// no known constant), or a non-nil error for fatal ones.
type Source interface {
	Load() (*mapdata.Corpus, []string, error)
}
