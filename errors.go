package lexsearch

import (
	"errors"

	"github.com/lexsearch/lexsearch/internal/automaton"
)

// Sentinel errors returned by Search and Query validation, one for each
// code in spec §7's taxonomy. Callers compare with errors.Is, the Go
// translation of the original library's enumerated error codes
// (mn_strerror / vb_strerror).
var (
	// ErrTooLong ("E2LONG") is returned when the query is longer than
	// utf8codec.MaxWordLen bytes.
	ErrTooLong = errors.New("lexsearch: query longer than the maximum word length")
	// ErrPageSize ("EPAGE") is returned when Query.PageSize exceeds
	// MaxPageSize.
	ErrPageSize = errors.New("lexsearch: page size exceeds the maximum")
	// ErrQueryUTF8 ("EQUTF8") is returned when the query isn't valid
	// UTF-8, for modes that must decode it into code points.
	ErrQueryUTF8 = errors.New("lexsearch: query is not valid UTF-8")
	// ErrLexiconUTF8 ("ELUTF8") is returned when a candidate word pulled
	// from the lexicon isn't valid UTF-8.
	ErrLexiconUTF8 = errors.New("lexsearch: lexicon entry is not valid UTF-8")
	// ErrNotNumbered ("EFSA") is returned when Search is given an
	// automaton without per-transition counts.
	ErrNotNumbered = automaton.ErrNotNumbered
)
