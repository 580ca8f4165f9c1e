package automaton

import "errors"

var (
	// ErrOutOfOrder is returned by Encoder.Add when a word does not sort
	// strictly after the previously added word.
	ErrOutOfOrder = errors.New("automaton: word out of order")
	// ErrWord is returned by Encoder.Add for an empty word or one longer
	// than utf8codec.MaxWordLen bytes.
	ErrWord = errors.New("automaton: invalid word")
	// ErrFrozen is returned by any Encoder method other than Clear once
	// the encoder has produced a dump or hit an unrecoverable error.
	ErrFrozen = errors.New("automaton: encoder is frozen, call Clear to reuse it")
	// ErrTooBig is returned when encoding the lexicon would exceed the
	// 22-bit transition-index space.
	ErrTooBig = errors.New("automaton: lexicon too large to encode")
	// ErrMagic is returned by Load when the stream doesn't start with the
	// expected header magic number.
	ErrMagic = errors.New("automaton: bad magic number")
	// ErrVersion is returned by Load for an on-disk format version this
	// package doesn't understand.
	ErrVersion = errors.New("automaton: unsupported format version")
	// ErrCorrupt is returned by Load when the header declares zero
	// transitions or an unknown automaton type. A stream that ends early
	// is reported with the Reader's own error instead.
	ErrCorrupt = errors.New("automaton: corrupt automaton data")
	// ErrNotNumbered is returned by Locate and Extract when called on an
	// automaton encoded without per-transition counts.
	ErrNotNumbered = errors.New("automaton: automaton is not numbered")
)
