package automaton

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

var testWords = []string{
	"a", "ab", "abacus", "abandon", "abandoned", "abc", "about",
	"above", "abroad", "absent", "absolute", "abstract", "abuse",
	"b", "back", "backup", "bad", "badge", "bake", "bakery",
	"ball", "banana", "band", "bandana", "zoo", "zoom",
}

func buildEncoder(t *testing.T, numbered bool, words []string) *bytes.Buffer {
	t.Helper()
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	enc := NewEncoder(numbered)
	for _, w := range sorted {
		require.NoError(t, enc.Add([]byte(w)), "adding %q", w)
	}
	var buf bytes.Buffer
	require.NoError(t, enc.Dump(IOWriter(&buf)))
	return &buf
}

func TestEncoderRejectsOutOfOrder(t *testing.T) {
	enc := NewEncoder(false)
	require.NoError(t, enc.Add([]byte("banana")))
	err := enc.Add([]byte("apple"))
	require.ErrorIs(t, err, ErrOutOfOrder)
}

func TestEncoderRejectsDuplicate(t *testing.T) {
	enc := NewEncoder(false)
	require.NoError(t, enc.Add([]byte("banana")))
	err := enc.Add([]byte("banana"))
	require.ErrorIs(t, err, ErrOutOfOrder)
}

func TestEncoderFreezesAfterDump(t *testing.T) {
	enc := NewEncoder(false)
	require.NoError(t, enc.Add([]byte("a")))
	var buf bytes.Buffer
	require.NoError(t, enc.Dump(IOWriter(&buf)))
	require.ErrorIs(t, enc.Add([]byte("b")), ErrFrozen)
}

func TestContains(t *testing.T) {
	buf := buildEncoder(t, false, testWords)
	a, err := Load(IOReader(buf))
	require.NoError(t, err)

	for _, w := range testWords {
		require.True(t, a.Contains([]byte(w)), "expected %q to be contained", w)
	}
	for _, miss := range []string{"", "zz", "abx", "bandanas", "ab ", "Z"} {
		require.False(t, a.Contains([]byte(miss)), "expected %q to be absent", miss)
	}
}

func TestSizeNumberedAndStandard(t *testing.T) {
	numbered := buildEncoder(t, true, testWords)
	a, err := Load(IOReader(numbered))
	require.NoError(t, err)
	require.Equal(t, len(testWords), a.Size())

	standard := buildEncoder(t, false, testWords)
	b, err := Load(IOReader(standard))
	require.NoError(t, err)
	require.Equal(t, len(testWords), b.Size())
}

func TestLocateAndExtractAreInverses(t *testing.T) {
	sorted := append([]string(nil), testWords...)
	sort.Strings(sorted)

	buf := buildEncoder(t, true, testWords)
	a, err := Load(IOReader(buf))
	require.NoError(t, err)

	for i, w := range sorted {
		ordinal, ok, err := a.Locate([]byte(w))
		require.NoError(t, err)
		require.True(t, ok, "expected %q to be located", w)
		require.EqualValues(t, i+1, ordinal, "ordinal for %q", w)

		extracted, ok, err := a.Extract(uint32(i + 1))
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, w, string(extracted))
	}

	_, ok, err := a.Locate([]byte("doesnotexist"))
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = a.Extract(uint32(len(sorted) + 1))
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = a.Extract(0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLocateRequiresNumbered(t *testing.T) {
	buf := buildEncoder(t, false, testWords)
	a, err := Load(IOReader(buf))
	require.NoError(t, err)

	_, _, err = a.Locate([]byte("a"))
	require.ErrorIs(t, err, ErrNotNumbered)
	_, _, err = a.Extract(0)
	require.ErrorIs(t, err, ErrNotNumbered)
}

func TestIteratorYieldsAllWordsInOrder(t *testing.T) {
	sorted := append([]string(nil), testWords...)
	sort.Strings(sorted)

	buf := buildEncoder(t, false, testWords)
	a, err := Load(IOReader(buf))
	require.NoError(t, err)

	it := NewIterator(a)
	var got []string
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		got = append(got, string(w))
	}
	require.Equal(t, sorted, got)
}

func TestPrefixIteratorScopesToPrefix(t *testing.T) {
	buf := buildEncoder(t, false, testWords)
	a, err := Load(IOReader(buf))
	require.NoError(t, err)

	it := NewPrefixIterator(a, []byte("ab"))
	var got []string
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		got = append(got, string(w))
	}
	require.Equal(t, []string{"ab", "abacus", "abandon", "abandoned", "abc", "about", "above", "abroad", "absent", "absolute", "abstract", "abuse"}, got)
}

func TestPrefixIteratorMissingPrefix(t *testing.T) {
	buf := buildEncoder(t, false, testWords)
	a, err := Load(IOReader(buf))
	require.NoError(t, err)

	it := NewPrefixIterator(a, []byte("xyz"))
	_, ok := it.Next()
	require.False(t, ok)
}

func TestSeekIteratorResumesMidStream(t *testing.T) {
	sorted := append([]string(nil), testWords...)
	sort.Strings(sorted)

	buf := buildEncoder(t, false, testWords)
	a, err := Load(IOReader(buf))
	require.NoError(t, err)

	it := NewSeekIterator(a, []byte("bad"))
	var got []string
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		got = append(got, string(w))
	}

	idx := sort.SearchStrings(sorted, "bad")
	require.Equal(t, sorted[idx:], got)
}

func TestSeekIteratorPastEnd(t *testing.T) {
	buf := buildEncoder(t, false, testWords)
	a, err := Load(IOReader(buf))
	require.NoError(t, err)

	it := NewSeekIterator(a, []byte("zzzzz"))
	_, ok := it.Next()
	require.False(t, ok)
}

func TestOrdinalIteratorResumesMidStream(t *testing.T) {
	sorted := append([]string(nil), testWords...)
	sort.Strings(sorted)

	buf := buildEncoder(t, true, testWords)
	a, err := Load(IOReader(buf))
	require.NoError(t, err)

	const from = 6 // 1-based ordinal; sorted[5:] onward
	it, err := NewOrdinalIterator(a, from)
	require.NoError(t, err)

	var got []string
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		got = append(got, string(w))
	}
	require.Equal(t, sorted[from-1:], got)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("not an automaton stream at all......")
	_, err := Load(IOReader(buf))
	require.ErrorIs(t, err, ErrMagic)
}
