package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-autoanchors/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxLabelLength = 100  // TOC label
	MaxPathLength  = 4096 // Directories
	MaxURLLength   = 2048 // Browser limit
	MaxStyleLength = 64   // Style name
)

// configDirName is the directory searched under the user config dir.
const configDirName = "go-autoanchors"

// Config holds all configuration for an anchoring run.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	TOC     TOCConfig     `yaml:"toc"`
	Anchors AnchorsConfig `yaml:"anchors"`
	Assets  AssetsConfig  `yaml:"assets"`
	PDF     PDFConfig     `yaml:"pdf"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Used when no path argument is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the source
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Enabled bool   `yaml:"enabled"`
	Label   string `yaml:"label"`  // Empty = "Contents"
	Advert  bool   `yaml:"advert"` // Render the advert placeholder
}

// AnchorsConfig defines header anchor options.
type AnchorsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// AssetsConfig defines stylesheet options.
type AssetsConfig struct {
	BasePath   string `yaml:"basePath"`   // Custom asset directory (empty = embedded only)
	Style      string `yaml:"style"`      // Style name (default: autoanchors)
	Inline     bool   `yaml:"inline"`     // Inline the stylesheet into output documents
	InstallURL string `yaml:"installURL"` // Base URL the stylesheet link is resolved against
}

// PDFConfig defines PDF rendering options.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"`
	Timeout string `yaml:"timeout"` // Go duration, e.g. "30s"
}

// DefaultConfig returns the configuration matching the library defaults:
// anchors and TOC on, advert on, no PDF.
func DefaultConfig() *Config {
	return &Config{
		TOC:     TOCConfig{Enabled: true, Advert: true},
		Anchors: AnchorsConfig{Enabled: true},
		Assets:  AssetsConfig{Style: "autoanchors"},
	}
}

// Validate checks field lengths and formats.
// Called by LoadConfig; available for configs built in code.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("toc.label", c.TOC.Label, MaxLabelLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.style", c.Assets.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.installURL", c.Assets.InstallURL, MaxURLLength); err != nil {
		return err
	}

	if c.Assets.InstallURL != "" {
		if _, err := url.Parse(c.Assets.InstallURL); err != nil {
			return fmt.Errorf("%w: assets.installURL: %v", ErrInvalidValue, err)
		}
	}

	if c.PDF.Timeout != "" {
		d, err := time.ParseDuration(c.PDF.Timeout)
		if err != nil {
			return fmt.Errorf("%w: pdf.timeout: %v", ErrInvalidValue, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: pdf.timeout: must be positive, got %s", ErrInvalidValue, c.PDF.Timeout)
		}
	}

	return nil
}

// PDFTimeout returns the parsed PDF timeout, or 0 when unset.
func (c *Config) PDFTimeout() time.Duration {
	d, err := time.ParseDuration(c.PDF.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// Names are searched as name.yaml and name.yml in the current directory,
// then in the user config directory. Fields absent from the file keep their
// DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	dirs := []string{""}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, configDirName))
	}

	for _, dir := range dirs {
		for _, ext := range extensions {
			path := filepath.Join(dir, name+ext)
			if fileExists(path) {
				return path, nil
			}
			tried = append(tried, path)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
