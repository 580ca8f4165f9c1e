package lexsearch

import (
	"bytes"
	"sort"
	"testing"

	"github.com/lexsearch/lexsearch/internal/automaton"
	"github.com/stretchr/testify/require"
)

func buildLexicon(t *testing.T, words ...string) *automaton.DAFSA {
	t.Helper()
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	enc := automaton.NewEncoder(true)
	for _, w := range sorted {
		require.NoError(t, enc.Add([]byte(w)))
	}
	var buf bytes.Buffer
	require.NoError(t, enc.Dump(automaton.IOWriter(&buf)))

	lex, err := automaton.Load(automaton.IOReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)
	return lex
}

func collect(t *testing.T, lex *automaton.DAFSA, q *Query) []string {
	t.Helper()
	var got []string
	sink := SinkFunc(func(word []byte) error {
		got = append(got, string(word))
		return nil
	})
	require.NoError(t, Search(lex, q, sink))
	return got
}

func TestSearchScenarioPrefix(t *testing.T) {
	lex := buildLexicon(t, "cat", "cater", "dog", "door")
	q := NewQuery("ca")
	q.Mode = ModePrefix
	q.PageSize = 10
	got := collect(t, lex, q)
	require.Equal(t, []string{"cat", "cater"}, got)
	require.True(t, q.Cursor.LastPage)
}

func TestSearchScenarioSuffix(t *testing.T) {
	lex := buildLexicon(t, "cat", "cater", "dog", "door")
	q := NewQuery("er")
	q.Mode = ModeSuffix
	q.PageSize = 10
	got := collect(t, lex, q)
	require.Equal(t, []string{"cater"}, got)
	require.True(t, q.Cursor.LastPage)
}

func TestSearchScenarioSubstr(t *testing.T) {
	lex := buildLexicon(t, "cat", "cater", "dog", "door")
	q := NewQuery("oo")
	q.Mode = ModeSubstr
	q.PageSize = 10
	got := collect(t, lex, q)
	require.Equal(t, []string{"door"}, got)
	require.True(t, q.Cursor.LastPage)
}

func TestSearchScenarioGlob(t *testing.T) {
	lex := buildLexicon(t, "cat", "cater", "dog", "door")
	q := NewQuery("c*r")
	q.Mode = ModeGlob
	q.PageSize = 10
	got := collect(t, lex, q)
	require.Equal(t, []string{"cater"}, got)
	require.True(t, q.Cursor.LastPage)
}

func TestSearchScenarioPrefixPaginated(t *testing.T) {
	lex := buildLexicon(t, "cat", "cater", "dog", "door")
	q := NewQuery("d")
	q.Mode = ModePrefix
	q.PageSize = 1

	page1 := collect(t, lex, q)
	require.Equal(t, []string{"dog"}, page1)
	require.False(t, q.Cursor.LastPage)

	page2 := collect(t, lex, q)
	require.Equal(t, []string{"door"}, page2)
	require.True(t, q.Cursor.LastPage)
}

func TestSearchScenarioLevenshtein(t *testing.T) {
	lex := buildLexicon(t, "cat", "cater", "dog", "door")
	q := NewQuery("dor")
	q.Mode = ModeLevenshtein
	q.MaxDist = 1
	q.PrefixLen = 1
	q.PageSize = 10
	got := collect(t, lex, q)
	require.Equal(t, []string{"dog", "door"}, got)
	require.True(t, q.Cursor.LastPage)
}

func TestSearchTerminalCursorIsNoop(t *testing.T) {
	lex := buildLexicon(t, "cat", "dog")
	q := NewQuery("cat")
	q.Mode = ModeExact
	q.Cursor.LastPage = true
	got := collect(t, lex, q)
	require.Empty(t, got)
}

func TestSearchRejectsOversizePage(t *testing.T) {
	lex := buildLexicon(t, "cat")
	q := NewQuery("cat")
	q.PageSize = MaxPageSize + 1
	require.ErrorIs(t, Search(lex, q, SinkFunc(func([]byte) error { return nil })), ErrPageSize)
}

func TestSearchRejectsOverlongQuery(t *testing.T) {
	lex := buildLexicon(t, "cat")
	q := NewQuery(string(make([]byte, 400)))
	require.ErrorIs(t, Search(lex, q, SinkFunc(func([]byte) error { return nil })), ErrTooLong)
}

func TestSearchRequiresNumberedAutomaton(t *testing.T) {
	enc := automaton.NewEncoder(false)
	require.NoError(t, enc.Add([]byte("cat")))
	var buf bytes.Buffer
	require.NoError(t, enc.Dump(automaton.IOWriter(&buf)))
	lex, err := automaton.Load(automaton.IOReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)

	q := NewQuery("cat")
	require.ErrorIs(t, Search(lex, q, SinkFunc(func([]byte) error { return nil })), ErrNotNumbered)
}

func TestSearchFuzzyPaginationIsCursorOpaque(t *testing.T) {
	lex := buildLexicon(t, "cat", "cater", "cats", "car", "dog", "door")
	q := NewQuery("cat")
	q.Mode = ModeLevenshtein
	q.MaxDist = 2
	q.PrefixLen = 0
	q.PageSize = 2

	var all []string
	for {
		page := collect(t, lex, q)
		all = append(all, page...)
		if q.Cursor.LastPage {
			break
		}
		require.LessOrEqual(t, len(page), 2)
	}
	require.Contains(t, all, "cat")
	require.Contains(t, all, "cats")
	require.Contains(t, all, "car")
	require.Contains(t, all, "cater")

	seen := map[string]bool{}
	for _, w := range all {
		require.False(t, seen[w], "duplicate result %q", w)
		seen[w] = true
	}
}

func TestSearchFuzzyDegradesToExactWhenPrefixLenExceedsQuery(t *testing.T) {
	lex := buildLexicon(t, "cat", "cater")
	q := NewQuery("cat")
	q.Mode = ModeLevenshtein
	q.PrefixLen = 10
	got := collect(t, lex, q)
	require.Equal(t, []string{"cat"}, got)
	require.True(t, q.Cursor.LastPage)
}
