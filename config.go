package gridslice

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/shibukawa/gridslice/formatter"
)

// Config represents the gridslice configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Input  InputConfig  `yaml:"input"`
}

// OutputConfig represents record output settings
type OutputConfig struct {
	Format    string  `yaml:"format"`
	Separator *string `yaml:"separator"` // Pointer to distinguish between unset and an empty separator
}

// FieldSeparator returns the separator for plain output
func (o OutputConfig) FieldSeparator() string {
	if o.Separator == nil {
		return formatter.DefaultSeparator
	}
	return *o.Separator
}

// InputConfig represents input handling settings
type InputConfig struct {
	// Strict reports a read error in the middle of the input instead of
	// silently ending the output there
	Strict bool `yaml:"strict"`
	// Graphemes treats grapheme clusters as characters
	Graphemes bool `yaml:"graphemes"`
	// Compose converts fields to Unicode NFC before characters are counted
	Compose bool `yaml:"compose"`
}

// LoadConfig loads configuration from the specified file.
// An empty path or a missing file yields the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return getDefaultConfig(), nil
	}

	// Check if config file exists
	_, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate the configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	// Apply defaults for missing values
	applyDefaults(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	if config.Output.Format != "" && !formatter.IsValidOutputFormat(config.Output.Format) {
		return fmt.Errorf("%w: output.format '%s' is invalid: must be one of %v", ErrConfigValidation, config.Output.Format, formatter.Formats)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)

	return config
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	if config.Output.Format == "" {
		config.Output.Format = string(formatter.FormatPlain)
	}
}
