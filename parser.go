package lexsearch

import "bytes"

// resolveMode inspects raw's leading byte to pick a mode when the query
// was built with ModeAuto, per spec §4.3. It returns the resolved mode
// and the remaining bytes (the magic character consumed, if any).
func resolveMode(mode Mode, raw []byte) (Mode, []byte) {
	if mode != ModeAuto {
		return mode, raw
	}
	if len(raw) == 0 {
		return ModeExact, raw
	}
	switch raw[0] {
	case '+':
		return ModeLCSubstr, raw[1:]
	case '@':
		return ModeDamerau, raw[1:]
	case '#':
		return ModeSubstr, raw[1:]
	default:
		return ModeGlob, raw
	}
}

// isGlobMeta reports whether b is one of the glob metacharacters that
// disqualify a pattern from the literal/prefix/substr/suffix
// simplifications.
func isGlobMeta(b byte) bool {
	return b == '*' || b == '?' || b == '['
}

func hasGlobMeta(s []byte) bool {
	for _, b := range s {
		if isGlobMeta(b) {
			return true
		}
	}
	return false
}

// simplifyGlob recognizes the four shapes spec §4.3 calls out (literal,
// `X*`, `*X*`, `*X`) and rewrites them to the cheaper matching mode they
// are equivalent to; anything else is left as ModeGlob over the
// unchanged pattern. Ported from original_source/src/parse.c's Ragel
// state machine (vb_simplify_glob) as a plain linear scan — there's no
// Ragel-equivalent code generator in the example pack, and porting a
// small generated scanner to a handwritten one is the ordinary thing to
// do when a C library without a Go dependency is translated.
func simplifyGlob(pattern []byte) (Mode, []byte) {
	switch {
	case !bytes.ContainsAny(string(pattern), "*?["):
		return ModeExact, pattern

	case len(pattern) >= 2 && pattern[len(pattern)-1] == '*' &&
		!hasGlobMeta(pattern[:len(pattern)-1]):
		return ModePrefix, pattern[:len(pattern)-1]

	case len(pattern) >= 3 && pattern[0] == '*' && pattern[len(pattern)-1] == '*' &&
		!hasGlobMeta(pattern[1:len(pattern)-1]):
		return ModeSubstr, pattern[1 : len(pattern)-1]

	case len(pattern) >= 2 && pattern[0] == '*' &&
		!hasGlobMeta(pattern[1:]):
		return ModeSuffix, pattern[1:]

	default:
		return ModeGlob, pattern
	}
}
