package automaton

// DAFSA is an immutable, loaded automaton: either Standard (membership
// and ordered iteration only) or Numbered (adds Locate and Extract via a
// parallel per-transition counts array).
type DAFSA struct {
	transitions []uint32
	counts      []uint32
	typ         Type
}

// Load reads an automaton previously written by Encoder.Dump.
func Load(r Reader) (*DAFSA, error) {
	nr, typ, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if nr == 0 {
		return nil, ErrCorrupt
	}
	transitions, err := readU32Slice(r, nr)
	if err != nil {
		return nil, err
	}
	var counts []uint32
	switch typ {
	case Standard:
	case Numbered:
		counts, err = readU32Slice(r, nr)
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrCorrupt
	}
	return &DAFSA{transitions: transitions, counts: counts, typ: typ}, nil
}

// Type reports whether the automaton carries per-transition counts.
func (a *DAFSA) Type() Type { return a.typ }

// Size returns the number of words in the automaton. For a Numbered
// automaton this is O(1); for a Standard one it walks the graph once,
// memoizing by state address.
func (a *DAFSA) Size() int {
	if a.typ == Numbered {
		if len(a.counts) == 0 {
			return 0
		}
		return int(a.counts[0])
	}
	memo := make(map[uint32]uint32)
	var count func(pos uint32) uint32
	count = func(pos uint32) uint32 {
		if pos == 0 {
			return 0
		}
		if v, ok := memo[pos]; ok {
			return v
		}
		var total uint32
		p := pos
		for {
			t := a.transitions[p]
			n := count(dest(t))
			if isTerminal(t) {
				n++
			}
			total += n
			if isLast(t) {
				break
			}
			p++
		}
		memo[pos] = total
		return total
	}
	return int(count(dest(a.transitions[0])))
}

func (a *DAFSA) findChild(pos uint32, b byte) (uint32, uint32, bool) {
	if pos == 0 {
		return 0, 0, false
	}
	p := pos
	for {
		t := a.transitions[p]
		if symbol(t) == b {
			return p, t, true
		}
		if isLast(t) {
			return 0, 0, false
		}
		p++
	}
}

// Contains reports whether word is in the lexicon.
func (a *DAFSA) Contains(word []byte) bool {
	if len(word) == 0 || len(a.transitions) == 0 {
		return false
	}
	pos := dest(a.transitions[0])
	for i := 0; i < len(word); i++ {
		_, t, ok := a.findChild(pos, word[i])
		if !ok {
			return false
		}
		if i == len(word)-1 {
			return isTerminal(t)
		}
		pos = dest(t)
	}
	return false
}

// Locate returns the 1-based ordinal of word within the lexicon's sorted
// order, if present (0 and false if absent). Requires a Numbered
// automaton.
func (a *DAFSA) Locate(word []byte) (uint32, bool, error) {
	if a.typ != Numbered {
		return 0, false, ErrNotNumbered
	}
	if len(word) == 0 || len(a.transitions) == 0 {
		return 0, false, nil
	}
	pos := dest(a.transitions[0])
	var rank uint32
	for i := 0; i < len(word); i++ {
		c := word[i]
		if pos == 0 {
			return 0, false, nil
		}
		p := pos
		matched := false
		for {
			t := a.transitions[p]
			s := symbol(t)
			if s == c {
				matched = true
				if i == len(word)-1 {
					if isTerminal(t) {
						return rank + 1, true, nil
					}
					return 0, false, nil
				}
				if isTerminal(t) {
					rank++
				}
				pos = dest(t)
				break
			}
			rank += a.counts[p]
			if isLast(t) {
				break
			}
			p++
		}
		if !matched {
			return 0, false, nil
		}
	}
	return 0, false, nil
}

// Extract returns the word at the given 1-based ordinal, in sorted
// order. Requires a Numbered automaton.
func (a *DAFSA) Extract(ordinal uint32) ([]byte, bool, error) {
	if a.typ != Numbered {
		return nil, false, ErrNotNumbered
	}
	if ordinal == 0 || len(a.counts) == 0 || ordinal > a.counts[0] {
		return nil, false, nil
	}
	pos := dest(a.transitions[0])
	remaining := ordinal - 1
	var word []byte
outer:
	for {
		if pos == 0 {
			return nil, false, nil
		}
		p := pos
		for {
			t := a.transitions[p]
			c := a.counts[p]
			deeper := c
			if isTerminal(t) {
				if remaining == 0 {
					word = append(word, symbol(t))
					return word, true, nil
				}
				remaining--
				deeper--
			}
			if remaining < deeper {
				word = append(word, symbol(t))
				pos = dest(t)
				continue outer
			}
			remaining -= deeper
			if isLast(t) {
				return nil, false, nil
			}
			p++
		}
	}
}
