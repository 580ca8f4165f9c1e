package runner

import (
	"path/filepath"

	"github.com/lexsearch/lexsearch"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

// LoadConfig reads the query-default config from path, or from
// lexsearch.DefaultConfigFilePath if path is empty. A missing file at
// the default location is silently backed by a freshly generated
// sample, the same first-run behavior as the teacher's
// permutation_<version>.yaml bootstrap.
func LoadConfig(path string) *lexsearch.Config {
	if path == "" {
		path = lexsearch.DefaultConfigFilePath
		if !fileutil.FileExists(path) {
			if err := ensureDir(filepath.Dir(path)); err != nil {
				gologger.Error().Msgf("lexsearch config dir not found and failed to create got: %v", err)
			}
			if err := lexsearch.GenerateSample(path); err != nil {
				gologger.Error().Msgf("failed to save default config to %v got: %v", path, err)
			}
		}
	}
	cfg, err := lexsearch.NewConfig(path)
	if err != nil {
		gologger.Error().Msgf("lexsearch: failed to read config %v got %v, using compiled-in defaults", path, err)
		return &lexsearch.Config{
			PageSize:  lexsearch.DefaultPageSize,
			MaxDist:   lexsearch.DefaultMaxDist,
			PrefixLen: lexsearch.DefaultPrefixLen,
			Mode:      lexsearch.ModeAuto.String(),
		}
	}
	return cfg
}

// ensureDir checks if dir exists, creating it if not.
func ensureDir(dirPath string) error {
	if fileutil.FolderExists(dirPath) {
		return nil
	}
	return fileutil.CreateFolder(dirPath)
}
