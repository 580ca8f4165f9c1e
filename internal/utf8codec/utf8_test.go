package utf8codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeASCII(t *testing.T) {
	dest := make([]rune, MaxWordLen+1)
	n, err := Decode(dest, []byte("cater"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []rune("cater"), dest[:n])
}

func TestDecodeMultiByte(t *testing.T) {
	dest := make([]rune, MaxWordLen+1)
	n, err := Decode(dest, []byte("café中\U0001F600"))
	require.NoError(t, err)
	require.Equal(t, []rune("café中\U0001F600"), dest[:n])
}

func TestDecodeTruncated(t *testing.T) {
	dest := make([]rune, MaxWordLen+1)
	_, err := Decode(dest, []byte{0xE4, 0xB8}) // start of a 3-byte sequence, missing last byte
	require.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeBadLead(t *testing.T) {
	dest := make([]rune, MaxWordLen+1)
	_, err := Decode(dest, []byte{0x80, 'a'}) // continuation byte can't start a sequence
	require.ErrorIs(t, err, ErrInvalid)
}

func TestPrefixBytesRoundTrip(t *testing.T) {
	s := "café中\U0001F600world"
	dest := make([]rune, MaxWordLen+1)
	n, err := Decode(dest, []byte(s))
	require.NoError(t, err)
	runes := dest[:n]

	for k := 0; k <= n; k++ {
		want := len([]byte(string(runes[:k])))
		require.Equal(t, want, PrefixBytes(runes, k), "k=%d", k)
	}
}
