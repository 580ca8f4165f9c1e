package metric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshteinMatchesKnownDistances(t *testing.T) {
	m := New(Levenshtein, []rune("kitten"), -1)
	w, ok := m.Score([]rune("sitting"))
	require.True(t, ok)
	require.EqualValues(t, 3, w)

	w, ok = m.Score([]rune("kitten"))
	require.True(t, ok)
	require.EqualValues(t, 0, w)
}

func TestLevenshteinRejectsOverMaxDist(t *testing.T) {
	m := New(Levenshtein, []rune("kitten"), 2)
	_, ok := m.Score([]rune("sitting"))
	require.False(t, ok)
}

func TestDamerauCountsTranspositionAsOneEdit(t *testing.T) {
	m := New(Damerau, []rune("ab"), -1)
	w, ok := m.Score([]rune("ba"))
	require.True(t, ok)
	require.EqualValues(t, 1, w, "adjacent transposition should cost one edit")

	w, ok = m.Score([]rune("ab"))
	require.True(t, ok)
	require.EqualValues(t, 0, w)
}

func TestDamerauFallsBackToSubstitutionCost(t *testing.T) {
	m := New(Damerau, []rune("abc"), -1)
	w, ok := m.Score([]rune("axc"))
	require.True(t, ok)
	require.EqualValues(t, 1, w)
}

func TestDamerauRejectsOverMaxDist(t *testing.T) {
	m := New(Damerau, []rune("kitten"), 1)
	_, ok := m.Score([]rune("sitting"))
	require.False(t, ok)
}

func TestLCSubstrWeightIsNegatedLength(t *testing.T) {
	m := New(LCSubstr, []rune("helloworld"), -1)
	w, ok := m.Score([]rune("xxhelloxx"))
	require.True(t, ok)
	require.EqualValues(t, -5, w) // "hello"

	w, ok = m.Score([]rune("zzz"))
	require.True(t, ok)
	require.EqualValues(t, 0, w)
}

func TestLCSubseqWeightIsNegatedRatio(t *testing.T) {
	m := New(LCSubseq, []rune("abc"), -1)
	w, ok := m.Score([]rune("abc"))
	require.True(t, ok)
	require.EqualValues(t, -1000, w) // 2*3/(3+3)*1000 = 1000, fully matching

	w, ok = m.Score([]rune("xyz"))
	require.True(t, ok)
	require.EqualValues(t, 0, w)
}

func TestMetricsReusableAcrossManyCandidates(t *testing.T) {
	m := New(Damerau, []rune("search"), -1)
	candidates := []string{"search", "serach", "search engine", "s", "searching", ""}
	for _, c := range candidates {
		_, ok := m.Score([]rune(c))
		require.True(t, ok)
	}
}
