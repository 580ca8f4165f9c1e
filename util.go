package lexsearch

import (
	"unsafe"

	"github.com/lexsearch/lexsearch/internal/utf8codec"
)

// unsafeToBytes converts a string to byte slice and does it with
// zero allocations.
//
// Reference - https://stackoverflow.com/questions/59209493/how-to-use-unsafe-get-a-byte-slice-from-a-string-without-memory-copy
func unsafeToBytes(data string) []byte {
	return unsafe.Slice(unsafe.StringData(data), len(data))
}

// decodeUTF8 decodes b into code points, for the modes (glob, fuzzy)
// that must reason about the query in code points rather than raw
// bytes.
func decodeUTF8(b []byte) ([]rune, error) {
	if len(b) == 0 {
		return nil, nil
	}
	dest := make([]rune, len(b))
	n, err := utf8codec.Decode(dest, b)
	if err != nil {
		return nil, err
	}
	return dest[:n], nil
}
