package lexsearch

// Mode selects the match driver a Query is dispatched to. ModeAuto asks
// Search to infer it from the query's leading character (see parser.go).
type Mode int

const (
	ModeAuto Mode = iota
	ModeExact
	ModePrefix
	ModeSubstr
	ModeSuffix
	ModeGlob
	ModeLevenshtein
	ModeDamerau
	ModeLCSubstr
	ModeLCSubseq
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeExact:
		return "exact"
	case ModePrefix:
		return "prefix"
	case ModeSubstr:
		return "substr"
	case ModeSuffix:
		return "suffix"
	case ModeGlob:
		return "glob"
	case ModeLevenshtein:
		return "levenshtein"
	case ModeDamerau:
		return "damerau"
	case ModeLCSubstr:
		return "lcsubstr"
	case ModeLCSubseq:
		return "lcsubseq"
	default:
		return "unknown"
	}
}

func (m Mode) fuzzy() bool {
	switch m {
	case ModeLevenshtein, ModeDamerau, ModeLCSubstr, ModeLCSubseq:
		return true
	default:
		return false
	}
}

// MaxPageSize is the hard ceiling on Query.PageSize (spec §5 resource
// limits).
const MaxPageSize = 30

// Cursor is opaque pagination state that round-trips through the caller:
// a subsequent Search call with the same Cursor value continues from
// just after the previous page's last item. LastPage is the terminal
// state — a Search call against a terminal cursor is a no-op success.
type Cursor struct {
	LastPage   bool
	LastPos    uint32
	LastWeight int32
}

// Query carries the raw query bytes, the resolved or to-be-resolved
// match mode, pagination parameters, and the cursor. The zero value has
// Mode ModeAuto, PageSize 0 (callers must set a page size 1..30), and a
// fresh (non-terminal) cursor.
type Query struct {
	Raw       []byte
	Mode      Mode
	PageSize  int
	MaxDist   int
	PrefixLen int
	Cursor    Cursor
}

// NewQuery returns a Query with the given raw bytes, ModeAuto, and a
// page size of DefaultPageSize. Callers typically only need to override
// Mode, MaxDist, or PrefixLen from there. Raw aliases raw's storage
// instead of copying it (raw is never mutated through Query), the same
// zero-copy conversion unsafeToBytes offers everywhere else a caller
// hands Search a string built from a longer-lived byte source.
func NewQuery(raw string) *Query {
	return &Query{
		Raw:       unsafeToBytes(raw),
		Mode:      ModeAuto,
		PageSize:  DefaultPageSize,
		MaxDist:   DefaultMaxDist,
		PrefixLen: DefaultPrefixLen,
	}
}
