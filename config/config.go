package config

import "fmt"

// Config contains logger configuration loadable from YAML or the
// environment.
type Config struct {
	// Level is the minimum level name ("debug".."critical").
	Level string `yaml:"level"`
	// Theme selects the rendering theme: "auto", "colorized", or "plain".
	Theme string `yaml:"theme"`
	// Output is "stderr", "stdout", or a file path.
	Output string `yaml:"output"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
	// TimestampFormat overrides the formatter's time layout.
	TimestampFormat string `yaml:"timestamp_format"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Theme == "" {
		c.Theme = "auto"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
	if c.Format == "" {
		c.Format = "text"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validLevels := []string{"debug", "info", "warn", "error", "critical"}
	if !contains(validLevels, c.Level) {
		return fmt.Errorf("level must be one of %v (got: %s)", validLevels, c.Level)
	}
	validThemes := []string{"auto", "colorized", "plain"}
	if !contains(validThemes, c.Theme) {
		return fmt.Errorf("theme must be one of %v (got: %s)", validThemes, c.Theme)
	}
	validFormats := []string{"text", "json"}
	if !contains(validFormats, c.Format) {
		return fmt.Errorf("format must be one of %v (got: %s)", validFormats, c.Format)
	}
	return nil
}

func contains(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}
