package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*.css
var styles embed.FS

// EmbeddedLoader loads styles compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle returns the embedded styles/{name}.css.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// DefaultStyle returns the built-in stylesheet.
func DefaultStyle() string {
	// Embedded at build time, the lookup cannot miss.
	css, _ := NewEmbeddedLoader().LoadStyle(DefaultStyleName)
	return css
}
