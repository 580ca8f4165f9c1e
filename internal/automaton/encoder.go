package automaton

import (
	"bytes"

	"github.com/lexsearch/lexsearch/internal/utf8codec"
)

// hashTableSize is the bucket count for the hash-consing table that lets
// mkstate reuse an existing state when two different suffixes minimize to
// the same transition list. This is not a general-purpose hash map: keys
// are runs of packed transitions, equality is a raw slice compare, and
// collisions chain through a fixed-size bucket array sized for lexicons
// in the low millions of words.
const hashTableSize = 1 << 17

type bucket struct {
	hash uint32
	addr uint32
	nr   uint32
	next *bucket
}

// scratchState accumulates the outgoing transitions of one depth of the
// word currently being added, before it is frozen (hash-consed into the
// automaton array) by mkstate.
type scratchState struct {
	transitions [256]uint32
	nr          int
	terminal    bool
}

// Encoder builds a numbered or standard automaton from words added in
// strictly ascending lexicographic order, the same one-pass incremental
// minimization construction as the reference implementation: each call
// to Add only needs to revisit the suffix states that diverge from the
// previous word, because everything before the common prefix is already
// minimal and can never change again.
type Encoder struct {
	numbered bool

	prev    [utf8codec.MaxWordLen + 1]byte
	prevLen int
	states  [utf8codec.MaxWordLen + 2]scratchState

	table [hashTableSize]*bucket

	automaton []uint32
	counts    []uint32

	finished bool
	poisoned bool
}

// NewEncoder returns an empty encoder. When numbered is true, the dumped
// automaton carries a parallel counts array enabling Locate and Extract.
func NewEncoder(numbered bool) *Encoder {
	return &Encoder{numbered: numbered}
}

// Clear resets the encoder to its initial empty state, recovering from
// ErrFrozen or any error returned by Add.
func (e *Encoder) Clear() {
	*e = Encoder{numbered: e.numbered}
}

func hashTransitions(t []uint32) uint32 {
	// FNV-1a over the raw 32-bit words.
	var h uint32 = 2166136261
	for _, v := range t {
		for shift := 0; shift < 32; shift += 8 {
			h ^= (v >> shift) & 0xFF
			h *= 16777619
		}
	}
	return h
}

func u32SliceEqual(automaton []uint32, addr, nr uint32, want []uint32) bool {
	got := automaton[addr : addr+nr]
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// mkstate hash-conses a scratch state's transition list into the flat
// automaton array, returning the address at which it lives (either a
// freshly appended run, or the address of an earlier, identical run).
func (e *Encoder) mkstate(s *scratchState) (uint32, error) {
	if s.nr == 0 {
		s.transitions[0] = 0
		s.nr = 1
	}
	s.transitions[s.nr-1] = setLast(s.transitions[s.nr-1], true)

	key := s.transitions[:s.nr]
	h := hashTransitions(key)
	slot := h & (hashTableSize - 1)
	for b := e.table[slot]; b != nil; b = b.next {
		if b.hash == h && b.nr == uint32(s.nr) && u32SliceEqual(e.automaton, b.addr, b.nr, key) {
			return b.addr, nil
		}
	}

	if uint32(len(e.automaton))+uint32(s.nr) > maxTransitions {
		return 0, ErrTooBig
	}
	addr := uint32(len(e.automaton))
	e.automaton = append(e.automaton, key...)
	if e.numbered {
		e.counts = append(e.counts, make([]uint32, s.nr)...)
	}
	e.table[slot] = &bucket{hash: h, addr: addr, nr: uint32(s.nr), next: e.table[slot]}
	return addr, nil
}

// minimize freezes every scratch state deeper than lim, folding each one
// into a transition appended to its parent's scratch state.
func (e *Encoder) minimize(lim int) error {
	for e.prevLen > lim {
		addr, err := e.mkstate(&e.states[e.prevLen])
		if err != nil {
			e.poisoned = true
			return err
		}
		terminal := e.states[e.prevLen].terminal
		// The state at this depth has now been folded into the
		// automaton; clear it so a later, unrelated word can reuse
		// the same depth in e.states without seeing stale children.
		e.states[e.prevLen] = scratchState{}

		e.prevLen--
		parent := &e.states[e.prevLen]
		tr := makeTransition(e.prev[e.prevLen], terminal, false, addr)
		parent.transitions[parent.nr] = tr
		parent.nr++
	}
	return nil
}

func commonPrefixLen(a []byte, n int, b []byte) int {
	m := n
	if len(b) < m {
		m = len(b)
	}
	i := 0
	for i < m && a[i] == b[i] {
		i++
	}
	return i
}

// Add inserts the next word in the lexicon. Words must be added in
// strictly ascending byte order (the ordering used throughout the
// package and on disk); any other order returns ErrOutOfOrder.
func (e *Encoder) Add(word []byte) error {
	if e.finished || e.poisoned {
		return ErrFrozen
	}
	if len(word) == 0 || len(word) > utf8codec.MaxWordLen {
		return ErrWord
	}
	if e.prevLen > 0 && bytes.Compare(word, e.prev[:e.prevLen]) <= 0 {
		return ErrOutOfOrder
	}

	p := commonPrefixLen(e.prev[:], e.prevLen, word)
	if err := e.minimize(p); err != nil {
		return err
	}
	// Depths p+1..old prevLen were just cleared by minimize; depths
	// beyond the old prevLen were never touched and are already zero.
	// Depth p itself must be left alone: it accumulates one transition
	// per sibling branch across however many words share this prefix.
	for i := p; i < len(word); i++ {
		e.prev[i] = word[i]
	}
	e.states[len(word)].terminal = true
	e.prevLen = len(word)
	return nil
}

func numberStates(automaton []uint32, counts []uint32, pos uint32) uint32 {
	if pos == 0 {
		return 0
	}
	var total uint32
	p := pos
	for {
		t := automaton[p]
		child := numberStates(automaton, counts, dest(t))
		if isTerminal(t) {
			child++
		}
		counts[p] = child
		total += child
		if isLast(t) {
			break
		}
		p++
	}
	return total
}

// Dump finalizes the automaton (minimizing every still-open suffix state)
// and writes it through w in the on-disk format described by format.go.
// The encoder is frozen afterward; call Clear to build a new one.
func (e *Encoder) Dump(w Writer) error {
	if e.finished || e.poisoned {
		return ErrFrozen
	}
	if err := e.minimize(0); err != nil {
		return err
	}
	start, err := e.mkstate(&e.states[0])
	if err != nil {
		e.poisoned = true
		return err
	}
	e.automaton[0] = setDest(e.automaton[0], start)

	typ := Standard
	if e.numbered {
		typ = Numbered
		total := numberStates(e.automaton, e.counts, start)
		e.counts[0] = total
	}

	if err := writeHeader(w, uint32(len(e.automaton)), typ); err != nil {
		return err
	}
	if err := writeU32Slice(w, e.automaton); err != nil {
		return err
	}
	if e.numbered {
		if err := writeU32Slice(w, e.counts); err != nil {
			return err
		}
	}
	e.finished = true
	return nil
}

// Type reports whether the encoder was constructed for a numbered or
// standard automaton.
func (e *Encoder) Type() Type {
	if e.numbered {
		return Numbered
	}
	return Standard
}
