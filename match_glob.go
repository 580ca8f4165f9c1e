package lexsearch

import (
	"bytes"

	"github.com/lexsearch/lexsearch/internal/automaton"
)

// matchGlobMode emits every word matching pattern under glob.go's
// semantics, paginated by q.PageSize. The automaton walk is seeded (and
// bounded, for deciding when the result set is exhausted) by the
// pattern's leading literal run — everything before the first `*`, `?`,
// or `[` — so a pattern like "cat*" only ever walks the "cat" subtree,
// the same pruning original_source/src/match.c's glob driver performs
// before falling back to full backtracking on the remainder.
func matchGlobMode(lex *automaton.DAFSA, pattern []byte, q *Query, sink Sink) error {
	litPrefix := literalPrefix(pattern)
	it, err := seekWords(lex, q, func() *automaton.Iterator {
		return automaton.NewPrefixIterator(lex, litPrefix)
	})
	if err != nil {
		return err
	}

	patRunes, err := decodeUTF8(pattern)
	if err != nil {
		return ErrQueryUTF8
	}

	emitted := 0
	for emitted < q.PageSize {
		word, ok := nextGlobCandidate(it, litPrefix)
		if !ok {
			q.Cursor = Cursor{LastPage: true}
			return nil
		}
		wordRunes, err := decodeUTF8(word)
		if err != nil {
			return ErrLexiconUTF8
		}
		if !matchGlob(patRunes, wordRunes) {
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
		word, ok := nextGlobCandidate(it, litPrefix)
		if !ok {
			q.Cursor = Cursor{LastPage: true}
			return nil
		}
		wordRunes, err := decodeUTF8(word)
		if err != nil {
			return ErrLexiconUTF8
		}
		if matchGlob(patRunes, wordRunes) {
			return nil
		}
	}
}

// nextGlobCandidate advances it, reporting false once the walk leaves
// litPrefix's subtree (matchGlobMode's signal that no further candidate
// can possibly match).
func nextGlobCandidate(it *automaton.Iterator, litPrefix []byte) ([]byte, bool) {
	word, ok := it.Next()
	if !ok || !bytes.HasPrefix(word, litPrefix) {
		return nil, false
	}
	return word, true
}

// literalPrefix returns the leading run of pattern before its first
// glob metacharacter. Metacharacters are always single ASCII bytes, so
// the split point always lands on a code-point boundary.
func literalPrefix(pattern []byte) []byte {
	for i, b := range pattern {
		if isGlobMeta(b) {
			return pattern[:i]
		}
	}
	return pattern
}
