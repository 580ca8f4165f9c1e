package lexsearch

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	errorutil "github.com/projectdiscovery/utils/errors"
)

var DefaultConfigFilePath = filepath.Join(getUserHomeDir(), ".config/lexsearch/config.yaml")

// Config holds the query defaults cmd/lexsearch falls back to when a
// flag isn't given explicitly, overriding the compiled-in constants in
// defaults.go.
type Config struct {
	PageSize  int    `yaml:"page_size"`
	MaxDist   int    `yaml:"max_dist"`
	PrefixLen int    `yaml:"prefix_len"`
	Mode      string `yaml:"mode"`
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errorutil.NewWithTag("lexsearch", "failed to read config file %v: %v", filePath, err)
	}
	cfg := Config{
		PageSize:  DefaultPageSize,
		MaxDist:   DefaultMaxDist,
		PrefixLen: DefaultPrefixLen,
		Mode:      ModeAuto.String(),
	}
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, errorutil.NewWithTag("lexsearch", "failed to parse config file %v: %v", filePath, err)
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default/sample values.
func GenerateSample(filePath string) error {
	cfg := Config{
		PageSize:  DefaultPageSize,
		MaxDist:   DefaultMaxDist,
		PrefixLen: DefaultPrefixLen,
		Mode:      ModeAuto.String(),
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return errorutil.NewWithTag("lexsearch", "failed to marshal sample config: %v", err)
	}
	if err := os.WriteFile(filePath, bin, 0644); err != nil {
		return errorutil.NewWithTag("lexsearch", "failed to write sample config %v: %v", filePath, err)
	}
	return nil
}

// ApplyQuery overrides a Query's pagination defaults with whatever this
// Config specifies, leaving Raw, Mode resolution, and Cursor untouched.
func (c *Config) ApplyQuery(q *Query) {
	if c.PageSize > 0 {
		q.PageSize = c.PageSize
	}
	if c.MaxDist > 0 {
		q.MaxDist = c.MaxDist
	}
	if c.PrefixLen > 0 {
		q.PrefixLen = c.PrefixLen
	}
}

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}
