package lexsearch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewQueryDefaults(t *testing.T) {
	q := NewQuery("cat")
	require.Equal(t, []byte("cat"), q.Raw)
	require.Equal(t, ModeAuto, q.Mode)
	require.Equal(t, DefaultPageSize, q.PageSize)
	require.Equal(t, DefaultMaxDist, q.MaxDist)
	require.Equal(t, DefaultPrefixLen, q.PrefixLen)
	require.Equal(t, Cursor{}, q.Cursor)
}

func TestModeStringAndFuzzy(t *testing.T) {
	require.Equal(t, "levenshtein", ModeLevenshtein.String())
	require.Equal(t, "prefix", ModePrefix.String())
	require.True(t, ModeDamerau.fuzzy())
	require.True(t, ModeLCSubseq.fuzzy())
	require.False(t, ModePrefix.fuzzy())
	require.False(t, ModeAuto.fuzzy())
}
