package lexsearch

import (
	"github.com/lexsearch/lexsearch/internal/automaton"
	"github.com/lexsearch/lexsearch/internal/utf8codec"
)

// Search runs q against lex, emitting matches through sink in ascending
// match order and advancing q.Cursor in place so the same *Query can be
// passed back in to fetch the next page. Ported from
// original_source/src/api.c's vb_match: validate the automaton and query
// shape, short-circuit a terminal cursor, resolve the match mode, and
// dispatch to the driver that owns that mode's matching and pagination
// rules.
func Search(lex *automaton.DAFSA, q *Query, sink Sink) error {
	if lex.Type() != automaton.Numbered {
		return ErrNotNumbered
	}
	if q.PageSize <= 0 || q.PageSize > MaxPageSize {
		return ErrPageSize
	}
	if len(q.Raw) > utf8codec.MaxWordLen {
		return ErrTooLong
	}
	if q.Cursor.LastPage {
		return nil
	}

	mode, raw := resolveMode(q.Mode, q.Raw)
	if mode == ModeGlob {
		mode, raw = simplifyGlob(raw)
	}

	switch mode {
	case ModeExact:
		return matchExact(lex, raw, q, sink)
	case ModePrefix:
		return matchPrefix(lex, raw, q, sink)
	case ModeSubstr:
		return matchSubstr(lex, raw, q, sink)
	case ModeSuffix:
		return matchSuffix(lex, raw, q, sink)
	case ModeGlob:
		return matchGlobMode(lex, raw, q, sink)
	default:
		return matchFuzzy(lex, mode, raw, q, sink)
	}
}
