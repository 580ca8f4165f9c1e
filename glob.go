package lexsearch

// matchGlob reports whether pattern matches str in full, per spec §4.4's
// glob semantics: `?` matches any single code point, `*` matches zero or
// more code points, `[abc]` matches any listed code point, `[^abc]` is
// negated, a `]` in the first position of a class is literal, and `*`,
// `?`, `[` inside a class are literal. A malformed character class (no
// closing `]`) fails the whole match. Ported from
// original_source/src/match.c's glob driver as a straightforward
// backtracking matcher over code-point slices (no regexp package in the
// pack's dependency set covers shell-style globs over []rune).
func matchGlob(pattern, str []rune) bool {
	return globMatch(pattern, str)
}

func globMatch(pattern, str []rune) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			// Collapse consecutive stars, then try every split point.
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 0 {
				return true
			}
			for i := 0; i <= len(str); i++ {
				if globMatch(pattern, str[i:]) {
					return true
				}
			}
			return false
		case '?':
			if len(str) == 0 {
				return false
			}
			pattern, str = pattern[1:], str[1:]
		case '[':
			if len(str) == 0 {
				return false
			}
			rest, ok := matchClass(pattern, str[0])
			if !ok {
				return false
			}
			pattern, str = rest, str[1:]
		default:
			if len(str) == 0 || str[0] != pattern[0] {
				return false
			}
			pattern, str = pattern[1:], str[1:]
		}
	}
	return len(str) == 0
}

// matchClass parses the `[...]` class at the start of pattern (which
// must begin with '[') and reports whether c is a member, along with the
// pattern slice just past the class. ok is false if the class is
// malformed (unterminated).
func matchClass(pattern []rune, c rune) ([]rune, bool) {
	i := 1
	negate := false
	if i < len(pattern) && pattern[i] == '^' {
		negate = true
		i++
	}
	start := i
	matched := false
	first := true
	for i < len(pattern) && (pattern[i] != ']' || first) {
		first = false
		if i+2 < len(pattern) && pattern[i+1] == '-' && pattern[i+2] != ']' {
			if pattern[i] <= c && c <= pattern[i+2] {
				matched = true
			}
			i += 3
			continue
		}
		if pattern[i] == c {
			matched = true
		}
		i++
	}
	if i >= len(pattern) || pattern[i] != ']' || i == start {
		return nil, false
	}
	if negate {
		matched = !matched
	}
	return pattern[i+1:], matched
}
