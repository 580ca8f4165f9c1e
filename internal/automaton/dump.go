package automaton

import (
	"fmt"
	"io"
)

// DumpFormat selects the textual rendering produced by WriteDebug.
type DumpFormat int

const (
	// FormatTXT lists one word per line, in order — a cheap way to
	// confirm a build round-trips the input list.
	FormatTXT DumpFormat = iota
	// FormatTSV lists "word\tordinal" lines (1-based ordinal) for a
	// Numbered automaton, or "word" alone for a Standard one.
	FormatTSV
	// FormatDOT emits the raw transition graph as Graphviz dot, for
	// visualizing small automatons while debugging minimization.
	FormatDOT
)

// WriteDebug renders a automaton in one of the DumpFormat styles. It
// never touches the on-disk binary format (see format.go); this is
// strictly a human-readable debugging aid.
func WriteDebug(w io.Writer, a *DAFSA, format DumpFormat) error {
	switch format {
	case FormatTXT:
		it := NewIterator(a)
		for word, ok := it.Next(); ok; word, ok = it.Next() {
			if _, err := fmt.Fprintf(w, "%s\n", word); err != nil {
				return err
			}
		}
		return nil
	case FormatTSV:
		it := NewIterator(a)
		ordinal := 1
		for word, ok := it.Next(); ok; word, ok = it.Next() {
			if a.typ == Numbered {
				if _, err := fmt.Fprintf(w, "%s\t%d\n", word, ordinal); err != nil {
					return err
				}
			} else if _, err := fmt.Fprintf(w, "%s\n", word); err != nil {
				return err
			}
			ordinal++
		}
		return nil
	case FormatDOT:
		return writeDOT(w, a)
	default:
		return fmt.Errorf("automaton: unknown dump format %d", format)
	}
}

func writeDOT(w io.Writer, a *DAFSA) error {
	if _, err := fmt.Fprintln(w, "digraph automaton {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "  rankdir=LR;")
	seen := make(map[uint32]bool)
	var walk func(pos uint32) error
	walk = func(pos uint32) error {
		if pos == 0 || seen[pos] {
			return nil
		}
		seen[pos] = true
		p := pos
		for {
			t := a.transitions[p]
			label := string(symbol(t))
			if isTerminal(t) {
				label += "$"
			}
			if _, err := fmt.Fprintf(w, "  s%d -> s%d [label=%q];\n", pos, dest(t), label); err != nil {
				return err
			}
			if err := walk(dest(t)); err != nil {
				return err
			}
			if isLast(t) {
				break
			}
			p++
		}
		return nil
	}
	if len(a.transitions) > 0 {
		if err := walk(dest(a.transitions[0])); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
