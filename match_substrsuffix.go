package lexsearch

import (
	"bytes"

	"github.com/lexsearch/lexsearch/internal/automaton"
)

// matchSubstr emits every word containing needle anywhere, in
// lexicographic order, paginated by q.PageSize.
func matchSubstr(lex *automaton.DAFSA, needle []byte, q *Query, sink Sink) error {
	return linearScan(lex, q, sink, func(word []byte) bool {
		return bytes.Contains(word, needle)
	})
}

// matchSuffix emits every word ending in needle, in lexicographic
// order, paginated by q.PageSize.
func matchSuffix(lex *automaton.DAFSA, needle []byte, q *Query, sink Sink) error {
	return linearScan(lex, q, sink, func(word []byte) bool {
		return bytes.HasSuffix(word, needle)
	})
}

// linearScan walks the whole lexicon in order, emitting the words
// satisfying pred until a page is full, then peeks ahead to decide
// whether the cursor should terminate. Substr and suffix have no
// literal prefix to seed an iterator narrower than the whole automaton,
// unlike prefix and glob — ported from original_source/src/match.c's
// substr/suffix drivers, which walk the same way.
func linearScan(lex *automaton.DAFSA, q *Query, sink Sink, pred func([]byte) bool) error {
	it, err := seekWords(lex, q, func() *automaton.Iterator {
		return automaton.NewIterator(lex)
	})
	if err != nil {
		return err
	}

	emitted := 0
	for emitted < q.PageSize {
		word, ok := it.Next()
		if !ok {
			q.Cursor = Cursor{LastPage: true}
			return nil
		}
		if !pred(word) {
			continue
		}
		if err := sink.Emit(word); err != nil {
			return err
		}
		emitted++
		if err := advanceCursor(lex, q, word); err != nil {
			return err
		}
	}

	for {
		word, ok := it.Next()
		if !ok {
			q.Cursor = Cursor{LastPage: true}
			return nil
		}
		if pred(word) {
			return nil
		}
	}
}
