package grep

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/coregx/minire"
	"github.com/coregx/minire/meta"
)

// DefaultConfigFile is read when no config path is given.
const DefaultConfigFile = ".minigrep.yaml"

// Config holds the defaults minigrep reads from its YAML config file.
// Command-line flags override them.
type Config struct {
	Color       bool `yaml:"color"`
	JSON        bool `yaml:"json"`
	LineNumbers bool `yaml:"line_numbers"`
	Jobs        int  `yaml:"jobs"`
	Strict      bool `yaml:"strict"`
	Prefilter   bool `yaml:"prefilter"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Jobs:      runtime.GOMAXPROCS(0),
		Prefilter: true,
	}
}

// LoadConfig reads path on top of DefaultConfig. When optional is true a
// missing file yields the defaults.
func LoadConfig(path string, optional bool) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if config.Jobs < 1 {
		return config, fmt.Errorf("config %s: jobs must be at least 1, got %d", path, config.Jobs)
	}
	return config, nil
}

// WriteConfig writes config to path as YAML, replacing any existing file.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}

// RegexConfig returns the engine configuration selected by c.
func (c Config) RegexConfig() meta.Config {
	config := minire.DefaultConfig()
	config.StrictDelimiters = c.Strict
	config.EnablePrefilter = c.Prefilter
	return config
}
