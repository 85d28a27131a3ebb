package config

import (
	"os"
	"path/filepath"

	"github.com/gear6io/tablediff/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is discovered by walking up from the working directory
const ConfigFileName = ".tablediff.yml"

// Config represents the tool configuration
type Config struct {
	Compare CompareConfig `yaml:"compare"`
	Log     LogConfig     `yaml:"log"`
}

// CompareConfig represents comparison defaults; CLI flags override them
type CompareConfig struct {
	Precision       int      `yaml:"precision"`        // Decimal digits kept when comparing numeric tokens
	GenerateCatalog bool     `yaml:"generate_catalog"` // Profile tabular files alongside the diff
	Recursive       bool     `yaml:"recursive"`        // Descend into subdirectories
	IgnorePatterns  []string `yaml:"ignore_patterns"`  // Basename globs excluded from enumeration
	Workers         int      `yaml:"workers"`          // Bounded parallelism for directory comparisons
	TypeResolution  string   `yaml:"type_resolution"`  // "first-seen" or "majority"
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`      // "json" or "console"
	FilePath   string `yaml:"file_path"`   // Path to log file
	Console    bool   `yaml:"console"`     // Whether to log to console
	MaxSize    int    `yaml:"max_size"`    // Max file size in MB
	MaxBackups int    `yaml:"max_backups"` // Max number of backup files
	Cleanup    bool   `yaml:"cleanup"`     // Whether to cleanup log file on startup
}

// LoadDefaultConfig returns a default configuration
func LoadDefaultConfig() *Config {
	return &Config{
		Compare: CompareConfig{
			Precision:       3,
			GenerateCatalog: true,
			Workers:         1,
			TypeResolution:  "first-seen",
		},
		Log: LogConfig{
			Level:    "info",
			Format:   "console",
			FilePath: "tablediff.log",
			Console:  false,
			MaxSize:  50, // 50MB
			Cleanup:  false,
		},
	}
}

// LoadConfig loads configuration from a file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.New(ErrConfigFileReadFailed, "failed to read config file", err)
	}

	config := LoadDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.New(ErrConfigFileParseFailed, "failed to parse config file", err)
	}

	if err := config.Validate(); err != nil {
		return nil, errors.New(ErrConfigValidationFailed, "configuration validation failed", err)
	}

	return config, nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.New(ErrConfigFileMarshalFailed, "failed to marshal config", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errors.New(ErrConfigFileWriteFailed, "failed to write config file", err)
	}

	return nil
}

// FindConfig searches for a config file from the working directory upward.
// It returns the discovered path and the loaded config, or defaults with an
// empty path when no config file exists.
func FindConfig() (string, *Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", LoadDefaultConfig(), nil
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			cfg, err := LoadConfig(candidate)
			if err != nil {
				return candidate, nil, err
			}
			return candidate, cfg, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", LoadDefaultConfig(), nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Compare.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// Validate validates the comparison defaults
func (c *CompareConfig) Validate() error {
	if c.Precision < 0 {
		return errors.New(ErrPrecisionNegative, "precision must not be negative", nil)
	}
	if c.Workers < 0 {
		return errors.New(ErrWorkersNegative, "workers must not be negative", nil)
	}
	if c.TypeResolution != "" && c.TypeResolution != "first-seen" && c.TypeResolution != "majority" {
		return errors.Newf(ErrTypeResolutionUnknown, "unknown type resolution '%s'", c.TypeResolution)
	}
	return nil
}

// Validate validates the logging configuration
func (l *LogConfig) Validate() error {
	switch l.Format {
	case "", "json", "console":
	default:
		return errors.Newf(ErrLogFormatUnknown, "unknown log format '%s'", l.Format)
	}
	return nil
}
