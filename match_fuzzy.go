package lexsearch

import (
	"github.com/lexsearch/lexsearch/internal/automaton"
	"github.com/lexsearch/lexsearch/internal/metric"
	"github.com/lexsearch/lexsearch/internal/utf8codec"
)

// fuzzyItem is one candidate admitted to the top-k heap: its metric
// weight, its ordinal (for the tie-break and for the resume cursor), and
// the word itself.
type fuzzyItem struct {
	weight  int32
	ordinal uint32
	word    []byte
}

// fuzzyCmp orders items by (weight asc, ordinal asc), the tie-break
// spec §8 fixes so results are reproducible across calls: cmp((w1,p1),
// (w2,p2)) = (w1<w2) ? -1 : (w1>w2) ? 1 : sign(p1-p2).
func fuzzyCmp(a, b fuzzyItem) int {
	if a.weight != b.weight {
		if a.weight < b.weight {
			return -1
		}
		return 1
	}
	if a.ordinal != b.ordinal {
		if a.ordinal < b.ordinal {
			return -1
		}
		return 1
	}
	return 0
}

func fuzzyMetricMode(mode Mode) metric.Mode {
	switch mode {
	case ModeDamerau:
		return metric.Damerau
	case ModeLCSubstr:
		return metric.LCSubstr
	case ModeLCSubseq:
		return metric.LCSubseq
	default:
		return metric.Levenshtein
	}
}

// matchFuzzy scores every admissible candidate under one of the four
// fuzzy metrics and emits the page_size best, breaking ties by ordinal.
// Unlike the other drivers it re-walks the full (prefix-pruned)
// candidate set on every call instead of resuming an iterator — weight
// order doesn't follow automaton order, so there is no seek point to
// jump to; admission against the cursor is what keeps each call's output
// to the next page, though every call scores the whole candidate set. Ported from original_source/src/match.c's
// fuzzy driver and src/heap.h's bounded top-k selection.
func matchFuzzy(lex *automaton.DAFSA, mode Mode, query []byte, q *Query, sink Sink) error {
	queryRunes, err := decodeUTF8(query)
	if err != nil {
		return ErrQueryUTF8
	}

	// spec §4.4's degrade-to-exact rule: a prefix_len longer than the
	// query itself can never be satisfied, so fall back to an exact
	// match and leave the fuzzy cursor fields untouched.
	if q.PrefixLen > len(queryRunes) {
		return matchExact(lex, query, q, sink)
	}

	m := metric.New(fuzzyMetricMode(mode), queryRunes, q.MaxDist)

	var it *automaton.Iterator
	if mode != ModeLCSubstr && q.PrefixLen > 0 {
		pb := utf8codec.PrefixBytes(queryRunes, q.PrefixLen)
		it = automaton.NewPrefixIterator(lex, query[:pb])
	} else {
		it = automaton.NewIterator(lex)
	}

	started := q.Cursor.LastPos != 0
	cursorKey := fuzzyItem{weight: q.Cursor.LastWeight, ordinal: q.Cursor.LastPos}

	h := newBoundedHeap(q.PageSize, fuzzyCmp)
	admissible := 0
	for word, ok := it.Next(); ok; word, ok = it.Next() {
		ordinal, _, err := lex.Locate(word)
		if err != nil {
			return err
		}
		candidate, err := decodeUTF8(word)
		if err != nil {
			return ErrLexiconUTF8
		}
		weight, ok := m.Score(candidate)
		if !ok {
			continue
		}
		item := fuzzyItem{weight: weight, ordinal: ordinal, word: append([]byte(nil), word...)}
		if started && fuzzyCmp(item, cursorKey) <= 0 {
			continue
		}
		admissible++
		h.push(item)
	}

	items := h.finish()
	for _, item := range items {
		if err := sink.Emit(item.word); err != nil {
			return err
		}
	}
	if admissible == len(items) {
		q.Cursor = Cursor{LastPage: true}
		return nil
	}
	last := items[len(items)-1]
	q.Cursor.LastPos = last.ordinal
	q.Cursor.LastWeight = last.weight
	q.Cursor.LastPage = false
	return nil
}
