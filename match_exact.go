package lexsearch

import "github.com/lexsearch/lexsearch/internal/automaton"

// matchExact emits word itself, if present, and always terminates the
// cursor — an exact match is always a single page. Also the landing
// point for a fuzzy query whose prefix_len exceeds the query length
// (spec §4.4's degrade-to-exact rule).
func matchExact(lex *automaton.DAFSA, word []byte, q *Query, sink Sink) error {
	if lex.Contains(word) {
		if err := sink.Emit(word); err != nil {
			return err
		}
	}
	q.Cursor.LastPage = true
	return nil
}
