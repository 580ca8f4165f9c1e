// Package metric scores how close a candidate word is to a query, for
// the fuzzy match modes (Levenshtein, Damerau-Levenshtein, longest common
// substring, longest common subsequence). Each Metric is a reusable
// scorer bound to one query for the lifetime of a search: the DP-based
// metrics size their row buffers to the query once and reuse them on
// every call, the way the teacher's edit-distance memo amortized repeated
// comparisons instead of paying setup cost on every pair.
package metric

// Mode selects which fuzzy metric a Metric computes.
type Mode int

const (
	Levenshtein Mode = iota
	Damerau
	LCSubstr
	LCSubseq
)

// Metric scores one candidate against the query it was built for. Lower
// is better for Levenshtein and Damerau (an edit distance); for LCSubstr
// and LCSubseq the score is already negated so that, consistently across
// every mode, lower sorts first into the bounded max-heap.
type Metric interface {
	// Score returns the candidate's weight against the bound query, and
	// whether the candidate passed the metric's own admission test (for
	// edit-distance metrics, whether it is within the configured maximum
	// distance).
	Score(candidate []rune) (weight int32, ok bool)
}

// New builds the Metric for mode, bound to query. maxDist is only
// consulted by the edit-distance modes (Levenshtein, Damerau); a
// candidate whose distance exceeds it is rejected via Score's ok return.
func New(mode Mode, query []rune, maxDist int) Metric {
	switch mode {
	case Levenshtein:
		return newLevenshteinMetric(query, maxDist)
	case Damerau:
		return newDamerauMetric(query, maxDist)
	case LCSubstr:
		return newLCSubstrMetric(query)
	case LCSubseq:
		return newLCSubseqMetric(query)
	default:
		return newLevenshteinMetric(query, maxDist)
	}
}
