package lexsearch

import (
	"bytes"

	"github.com/lexsearch/lexsearch/internal/automaton"
)

// matchPrefix emits, in order, every word beginning with prefix,
// paginated by q.PageSize. A fresh query (Cursor.LastPos == 0, which
// never collides with a real 1-based ordinal) seeds the walk with
// NewPrefixIterator; a resumed one seeds it one past the ordinal the
// previous page stopped at. Ported from original_source/src/match.c's
// prefix driver.
func matchPrefix(lex *automaton.DAFSA, prefix []byte, q *Query, sink Sink) error {
	it, err := seekWords(lex, q, func() *automaton.Iterator {
		return automaton.NewPrefixIterator(lex, prefix)
	})
	if err != nil {
		return err
	}

	emitted := 0
	for emitted < q.PageSize {
		word, ok := it.Next()
		if !ok || !bytes.HasPrefix(word, prefix) {
			q.Cursor = Cursor{LastPage: true}
			return nil
		}
		if err := sink.Emit(word); err != nil {
			return err
		}
		emitted++
		if err := advanceCursor(lex, q, word); err != nil {
			return err
		}
	}

	next, ok := it.Next()
	if !ok || !bytes.HasPrefix(next, prefix) {
		q.Cursor = Cursor{LastPage: true}
	}
	return nil
}

// seekWords returns an iterator positioned at the start of the result
// set on a fresh query, or resumed just past the cursor's last ordinal
// otherwise.
func seekWords(lex *automaton.DAFSA, q *Query, fresh func() *automaton.Iterator) (*automaton.Iterator, error) {
	if q.Cursor.LastPos == 0 {
		return fresh(), nil
	}
	return automaton.NewOrdinalIterator(lex, q.Cursor.LastPos+1)
}

// advanceCursor records word, just emitted, as the cursor's resume
// point.
func advanceCursor(lex *automaton.DAFSA, q *Query, word []byte) error {
	ordinal, _, err := lex.Locate(word)
	if err != nil {
		return err
	}
	q.Cursor.LastPos = ordinal
	return nil
}
