package lexsearch

// Compiled-in query defaults, the Go analogue of the original library's
// VB_QUERY_INIT macro. A Config read by NewConfig (or by
// internal/runner's LoadConfig) overrides these from a YAML file when one
// is present (see config.go).
const (
	DefaultPageSize  = 10
	DefaultMaxDist   = 2
	DefaultPrefixLen = 2
)
