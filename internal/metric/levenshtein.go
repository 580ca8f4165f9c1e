package metric

import "github.com/agnivade/levenshtein"

// levenshteinMetric wraps the agnivade/levenshtein package, which already
// does the classic Wagner-Fischer single-row DP without allocating beyond
// its own internal row buffer. There is no memoization to add here — each
// candidate is only ever scored once per search. The library takes
// strings, so the query and the candidate are converted to strings on
// every call.
type levenshteinMetric struct {
	query   []rune
	maxDist int
}

func newLevenshteinMetric(query []rune, maxDist int) *levenshteinMetric {
	return &levenshteinMetric{query: query, maxDist: maxDist}
}

func (m *levenshteinMetric) Score(candidate []rune) (int32, bool) {
	d := levenshtein.ComputeDistance(string(m.query), string(candidate))
	if m.maxDist >= 0 && d > m.maxDist {
		return 0, false
	}
	return int32(d), true
}
