package automaton

// frame is one level of the depth-first walk: p is the transition
// currently under consideration at this depth. entered marks that its
// byte has been appended to the running word and its terminal flag
// already tested; descended marks that its child subtree (if any) has
// already been pushed.
type frame struct {
	p         uint32
	entered   bool
	descended bool
}

// Iterator walks the words of a DAFSA in ascending lexicographic order.
// The zero value is not usable; construct with one of the New*Iterator
// functions.
type Iterator struct {
	a       *DAFSA
	stack   []frame
	word    []byte
	root    int
	pending []byte
}

// NewIterator walks every word in the automaton, in order.
func NewIterator(a *DAFSA) *Iterator {
	it := &Iterator{a: a}
	if len(a.transitions) == 0 {
		return it
	}
	pos := dest(a.transitions[0])
	if pos != 0 {
		it.stack = []frame{{p: pos}}
	}
	return it
}

// NewPrefixIterator walks every word beginning with prefix, in order,
// including prefix itself if it is a complete word.
func NewPrefixIterator(a *DAFSA, prefix []byte) *Iterator {
	it := &Iterator{a: a}
	if len(a.transitions) == 0 {
		return it
	}
	pos := dest(a.transitions[0])
	word := make([]byte, 0, len(prefix)+8)
	for i, c := range prefix {
		if pos == 0 {
			return it
		}
		_, t, ok := a.findChild(pos, c)
		if !ok {
			return it
		}
		word = append(word, c)
		if i == len(prefix)-1 && isTerminal(t) {
			it.pending = append([]byte(nil), word...)
		}
		pos = dest(t)
	}
	it.word = word
	if pos != 0 {
		it.stack = []frame{{p: pos}}
	}
	return it
}

// NewSeekIterator walks every word greater than or equal to target, in
// order: the lexicographic floor entry point used to resume a paginated
// walk from a cursor string.
func NewSeekIterator(a *DAFSA, target []byte) *Iterator {
	if len(target) == 0 {
		return NewIterator(a)
	}
	it := &Iterator{a: a}
	if len(a.transitions) == 0 {
		return it
	}
	pos := dest(a.transitions[0])
	var word []byte
	var stack []frame

	for i := 0; i < len(target); i++ {
		c := target[i]
		if pos == 0 {
			return finishSeek(it, a, stack, word)
		}
		p := pos
		for {
			t := a.transitions[p]
			s := symbol(t)
			switch {
			case s == c:
				word = append(word, c)
				stack = append(stack, frame{p: p, entered: true, descended: i < len(target)-1 || dest(t) == 0})
				if i == len(target)-1 {
					if isTerminal(t) {
						it.pending = append([]byte(nil), word...)
					}
					it.word = word
					it.root = 0
					it.stack = stack
					return it
				}
				pos = dest(t)
			case s > c:
				stack = append(stack, frame{p: p})
				it.word = word
				it.stack = stack
				return it
			default:
				if isLast(t) {
					return finishSeek(it, a, stack, word)
				}
				p++
				continue
			}
			break
		}
	}
	it.word = word
	it.stack = stack
	return it
}

// finishSeek backtracks from a failed descent (target sorts after
// everything reachable from the current path) to the next unexplored
// sibling, the way Next's own pop-and-advance step does.
func finishSeek(it *Iterator, a *DAFSA, stack []frame, word []byte) *Iterator {
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		word = word[:len(word)-1]
		t := a.transitions[f.p]
		if isLast(t) {
			stack = stack[:len(stack)-1]
			continue
		}
		f.p++
		f.entered = false
		f.descended = false
		it.word = word
		it.stack = stack
		return it
	}
	it.word = nil
	it.stack = nil
	return it
}

// NewOrdinalIterator walks every word from the given 1-based ordinal
// onward, in order: the entry point used to resume a paginated walk from
// a cursor ordinal. Requires a Numbered automaton.
func NewOrdinalIterator(a *DAFSA, ordinal uint32) (*Iterator, error) {
	it := &Iterator{a: a}
	if a.typ != Numbered {
		return nil, ErrNotNumbered
	}
	if ordinal == 0 || len(a.counts) == 0 || ordinal > a.counts[0] {
		return it, nil
	}
	pos := dest(a.transitions[0])
	remaining := ordinal - 1
	var word []byte
	var stack []frame
outer:
	for {
		if pos == 0 {
			it.word, it.stack = nil, nil
			return it, nil
		}
		p := pos
		for {
			t := a.transitions[p]
			c := a.counts[p]
			deeper := c
			if isTerminal(t) {
				if remaining == 0 {
					word = append(word, symbol(t))
					stack = append(stack, frame{p: p, entered: true, descended: dest(t) == 0})
					it.pending = append([]byte(nil), word...)
					it.word = word
					it.stack = stack
					return it, nil
				}
				remaining--
				deeper--
			}
			if remaining < deeper {
				word = append(word, symbol(t))
				stack = append(stack, frame{p: p, entered: true, descended: true})
				pos = dest(t)
				continue outer
			}
			remaining -= deeper
			if isLast(t) {
				it.word, it.stack = nil, nil
				return it, nil
			}
			p++
		}
	}
}

// Next advances the iterator, returning the next word and true, or nil
// and false once every reachable word has been visited. The returned
// slice is only valid until the next call to Next.
func (it *Iterator) Next() ([]byte, bool) {
	if it.pending != nil {
		w := it.pending
		it.pending = nil
		return w, true
	}
	for len(it.stack) > it.root {
		f := &it.stack[len(it.stack)-1]
		t := it.a.transitions[f.p]

		if !f.entered {
			f.entered = true
			it.word = append(it.word, symbol(t))
			if isTerminal(t) {
				return append([]byte(nil), it.word...), true
			}
		}
		if !f.descended {
			f.descended = true
			if d := dest(t); d != 0 {
				it.stack = append(it.stack, frame{p: d})
				continue
			}
		}
		it.word = it.word[:len(it.word)-1]
		if isLast(t) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		f.p++
		f.entered = false
		f.descended = false
	}
	return nil, false
}
