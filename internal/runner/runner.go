package runner

import (
	"github.com/lexsearch/lexsearch"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// BuildOptions holds the flags for `lexsearch build`.
type BuildOptions struct {
	Wordlist string
	Lexicon  string
	Verbose  bool
	Silent   bool
}

// ParseBuildFlags parses the flags for the build subcommand. Callers
// must strip the subcommand word from os.Args before calling this, the
// same way every projectdiscovery goflags.FlagSet reads directly off
// os.Args rather than an explicit argv parameter.
func ParseBuildFlags() *BuildOptions {
	opts := &BuildOptions{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Build a numbered lexicon automaton from a wordlist.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Wordlist, "wordlist", "w", "", "newline-delimited wordlist to build from"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Lexicon, "lexicon", "o", "", "lexicon file to write"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}
	applyLevel(opts.Silent, opts.Verbose)
	showBanner()

	if opts.Wordlist == "" || opts.Lexicon == "" {
		gologger.Fatal().Msgf("lexsearch build: both -wordlist and -lexicon are required")
	}
	return opts
}

// SearchOptions holds the flags for `lexsearch search`.
type SearchOptions struct {
	Lexicon    string
	Query      string
	Mode       string
	PageSize   int
	MaxDist    int
	PrefixLen  int
	Format     string
	Config     string
	LastPos    int
	LastWeight int
	Verbose    bool
	Silent     bool
}

// ParseSearchFlags parses the flags for the search subcommand: a direct
// translation of example.c's `<lexicon.dat> <query> [last_pos
// last_weight]` positional surface into goflags-style flags, since
// goflags.FlagSet reads flags off the full process argv rather than
// accepting a trailing positional tail the way the original CLI does.
func ParseSearchFlags() *SearchOptions {
	opts := &SearchOptions{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Search a lexicon automaton, one page per call.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Lexicon, "lexicon", "l", "", "lexicon file to search"),
		flagSet.StringVarP(&opts.Query, "query", "q", "", "query string"),
		flagSet.StringVarP(&opts.Mode, "mode", "m", "", "match mode (auto, exact, prefix, substr, suffix, glob, levenshtein, damerau, lcsubstr, lcsubseq)"),
	)

	flagSet.CreateGroup("pagination", "Pagination",
		flagSet.IntVarP(&opts.PageSize, "page-size", "ps", 0, "results per page (default from config)"),
		flagSet.IntVarP(&opts.LastPos, "last-pos", "lp", 0, "cursor: ordinal of the last emitted result"),
		flagSet.IntVarP(&opts.LastWeight, "last-weight", "lw", 0, "cursor: weight of the last emitted result (fuzzy modes)"),
	)

	flagSet.CreateGroup("fuzzy", "Fuzzy matching",
		flagSet.IntVarP(&opts.MaxDist, "max-dist", "md", 0, "maximum edit distance (default from config)"),
		flagSet.IntVarP(&opts.PrefixLen, "prefix-len", "pl", 0, "required shared prefix length, in code points (default from config)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Format, "format", "f", "", `per-result output template, e.g. "{{word}}" (default "{{word}}\n")`),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `lexsearch cli config file (default '$HOME/.config/lexsearch/config.yaml')`),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}
	applyLevel(opts.Silent, opts.Verbose)
	showBanner()

	if opts.Lexicon == "" || opts.Query == "" {
		gologger.Fatal().Msgf("lexsearch search: both -lexicon and -query are required")
	}
	if err := validatePageSize(opts.PageSize); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
	return opts
}

// validatePageSize rejects a -page-size flag outside Search's accepted
// range before a lexicon is even opened, the same early-validation role
// convertFileSizeToBytes plays for -max-size in the teacher.
func validatePageSize(pageSize int) error {
	if pageSize < 0 {
		return errorutil.NewWithTag("lexsearch", "-page-size cannot be negative")
	}
	if pageSize > lexsearch.MaxPageSize {
		return errorutil.NewWithTag("lexsearch", "-page-size %d exceeds the maximum of %d", pageSize, lexsearch.MaxPageSize)
	}
	return nil
}

// InspectOptions holds the flags for `lexsearch inspect`.
type InspectOptions struct {
	Lexicon string
	Format  string
}

// ParseInspectFlags parses the flags for the inspect subcommand.
func ParseInspectFlags() *InspectOptions {
	opts := &InspectOptions{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Dump a lexicon automaton in a human-readable format.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Lexicon, "lexicon", "l", "", "lexicon file to inspect"),
		flagSet.StringVarP(&opts.Format, "format", "f", "txt", "dump format (txt, tsv, dot)"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Lexicon == "" {
		gologger.Fatal().Msgf("lexsearch inspect: -lexicon is required")
	}
	return opts
}

func applyLevel(silent, verbose bool) {
	if silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
}
