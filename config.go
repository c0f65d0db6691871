package querytext

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the querytext CLI configuration
type Config struct {
	// DefaultContext is prepended to queries that carry no context filter.
	DefaultContext string `yaml:"default_context"`
	// PatternType selects how free text is scanned: literal, regexp, or
	// structural.
	PatternType string `yaml:"pattern_type"`
	// Redact extends the built-in set of filters whose values are replaced
	// before telemetry.
	Redact []string `yaml:"redact"`
	// Color toggles colored terminal output.
	Color *bool `yaml:"color"`
}

// ColorEnabled reports whether colored output is requested. Defaults to on.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if file doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := defaultConfig()
		expandConfigEnvVars(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config
	if err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	return &config, nil
}

func defaultConfig() *Config {
	return &Config{
		PatternType: "literal",
	}
}

func applyDefaults(config *Config) {
	if config.PatternType == "" {
		config.PatternType = "literal"
	}
}

func validateConfig(config *Config) error {
	switch config.PatternType {
	case "", "literal", "regexp", "structural":
	default:
		return fmt.Errorf("%w: unsupported pattern_type %q", ErrConfigValidation, config.PatternType)
	}
	for _, field := range config.Redact {
		if _, ok := LookupFilter(field); !ok {
			return fmt.Errorf("%w: %q in redact list", ErrUnknownFilter, field)
		}
	}
	return nil
}

// loadEnvFiles loads .env files in order of precedence
func loadEnvFiles() error {
	envFiles := []string{".env.local", ".env"}
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				return fmt.Errorf("failed to load %s: %w", file, err)
			}
		}
	}
	return nil
}

// expandConfigEnvVars expands ${VAR} references in string fields
func expandConfigEnvVars(config *Config) {
	config.DefaultContext = expandEnvVars(config.DefaultContext)
}

func expandEnvVars(value string) string {
	if !strings.Contains(value, "${") {
		return value
	}
	return os.Expand(value, os.Getenv)
}
