package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/lexsearch/lexsearch"
	"github.com/lexsearch/lexsearch/internal/automaton"
	"github.com/lexsearch/lexsearch/internal/runner"
	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

func main() {
	if len(os.Args) < 2 {
		gologger.Fatal().Msgf("usage: lexsearch <build|search> [flags]")
	}

	subcommand := os.Args[1]
	// goflags.FlagSet reads directly off os.Args, the way the teacher's
	// flagSet.Parse() does; strip the subcommand word before handing
	// control to it.
	os.Args = append(os.Args[:1], os.Args[2:]...)

	switch subcommand {
	case "build":
		runBuild()
	case "search":
		runSearch()
	case "inspect":
		runInspect()
	default:
		gologger.Fatal().Msgf("usage: lexsearch <build|search|inspect> [flags], got %q", subcommand)
	}
}

func runBuild() {
	opts := runner.ParseBuildFlags()

	f, err := os.Open(opts.Wordlist)
	if err != nil {
		gologger.Fatal().Msgf("failed to open wordlist %v got %v", opts.Wordlist, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		gologger.Fatal().Msgf("failed to read wordlist %v got %v", opts.Wordlist, err)
	}

	words = sliceutil.Dedupe(words)
	sort.Strings(words)

	enc := automaton.NewEncoder(true)
	for _, w := range words {
		if err := enc.Add([]byte(w)); err != nil {
			gologger.Fatal().Msgf("failed to add %q to lexicon got %v", w, err)
		}
	}

	out, err := os.Create(opts.Lexicon)
	if err != nil {
		gologger.Fatal().Msgf("failed to create lexicon %v got %v", opts.Lexicon, err)
	}
	defer out.Close()

	if err := enc.Dump(automaton.IOWriter(out)); err != nil {
		gologger.Fatal().Msgf("failed to write lexicon %v got %v", opts.Lexicon, err)
	}

	gologger.Info().Msgf("built lexicon with %d words -> %s", len(words), opts.Lexicon)
}

func runSearch() {
	opts := runner.ParseSearchFlags()
	cfg := runner.LoadConfig(opts.Config)

	f, err := os.Open(opts.Lexicon)
	if err != nil {
		gologger.Fatal().Msgf("failed to open lexicon %v got %v", opts.Lexicon, err)
	}
	defer f.Close()

	lex, err := automaton.Load(automaton.IOReader(f))
	if err != nil {
		gologger.Fatal().Msgf("failed to load lexicon %v got %v", opts.Lexicon, err)
	}

	q := lexsearch.NewQuery(opts.Query)
	cfg.ApplyQuery(q)
	modeName := opts.Mode
	if modeName == "" {
		modeName = cfg.Mode
	}
	if modeName != "" {
		mode, err := parseModeFlag(modeName)
		if err != nil {
			gologger.Fatal().Msgf("%v", err)
		}
		q.Mode = mode
	}
	if opts.PageSize > 0 {
		q.PageSize = opts.PageSize
	}
	if opts.MaxDist > 0 {
		q.MaxDist = opts.MaxDist
	}
	if opts.PrefixLen > 0 {
		q.PrefixLen = opts.PrefixLen
	}
	q.Cursor.LastPos = uint32(opts.LastPos)
	q.Cursor.LastWeight = int32(opts.LastWeight)

	sink, err := lexsearch.NewWriterSink(os.Stdout, opts.Format)
	if err != nil {
		gologger.Fatal().Msgf("invalid -format %q got %v", opts.Format, err)
	}

	if err := lexsearch.Search(lex, q, sink); err != nil {
		gologger.Fatal().Msgf("search failed: %v", err)
	}

	if !q.Cursor.LastPage {
		fmt.Printf("=> [%d %d]\n", q.Cursor.LastPos, q.Cursor.LastWeight)
	}
}

func runInspect() {
	opts := runner.ParseInspectFlags()

	f, err := os.Open(opts.Lexicon)
	if err != nil {
		gologger.Fatal().Msgf("failed to open lexicon %v got %v", opts.Lexicon, err)
	}
	defer f.Close()

	lex, err := automaton.Load(automaton.IOReader(f))
	if err != nil {
		gologger.Fatal().Msgf("failed to load lexicon %v got %v", opts.Lexicon, err)
	}

	format, err := parseDumpFormat(opts.Format)
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
	if err := automaton.WriteDebug(os.Stdout, lex, format); err != nil {
		gologger.Fatal().Msgf("failed to dump lexicon: %v", err)
	}
}

func parseDumpFormat(s string) (automaton.DumpFormat, error) {
	switch s {
	case "", "txt":
		return automaton.FormatTXT, nil
	case "tsv":
		return automaton.FormatTSV, nil
	case "dot":
		return automaton.FormatDOT, nil
	default:
		return 0, errorutil.NewWithTag("lexsearch", "unknown inspect format %q", s)
	}
}

func parseModeFlag(s string) (lexsearch.Mode, error) {
	switch s {
	case "auto":
		return lexsearch.ModeAuto, nil
	case "exact":
		return lexsearch.ModeExact, nil
	case "prefix":
		return lexsearch.ModePrefix, nil
	case "substr":
		return lexsearch.ModeSubstr, nil
	case "suffix":
		return lexsearch.ModeSuffix, nil
	case "glob":
		return lexsearch.ModeGlob, nil
	case "levenshtein":
		return lexsearch.ModeLevenshtein, nil
	case "damerau":
		return lexsearch.ModeDamerau, nil
	case "lcsubstr":
		return lexsearch.ModeLCSubstr, nil
	case "lcsubseq":
		return lexsearch.ModeLCSubseq, nil
	default:
		return lexsearch.ModeAuto, errorutil.NewWithTag("lexsearch", "unknown mode %q", s)
	}
}
