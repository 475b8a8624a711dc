package assets

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultStyleName is the name of the built-in stylesheet.
const DefaultStyleName = "autoanchors"

// StyleLoader loads CSS styles by name, without the .css extension.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// Resolver tries a custom loader first and falls back to embedded styles
// when the custom loader does not have the style.
type Resolver struct {
	custom   StyleLoader // nil without a custom base path
	embedded StyleLoader
}

// NewResolver creates a Resolver. An empty basePath uses embedded styles only.
func NewResolver(basePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}
	if basePath == "" {
		return r, nil
	}

	fs, err := NewFilesystemLoader(basePath)
	if err != nil {
		return nil, err
	}
	r.custom = fs
	return r, nil
}

// LoadStyle loads a style, preferring the custom loader.
// Only ErrStyleNotFound triggers the fallback; validation and I/O errors do not.
func (r *Resolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	css, err := r.custom.LoadStyle(name)
	if err == nil {
		return css, nil
	}
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}
	return r.embedded.LoadStyle(name)
}

// ValidateAssetName rejects empty names and names containing path separators
// or dots.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// Compile-time interface checks.
var (
	_ StyleLoader = (*Resolver)(nil)
	_ StyleLoader = (*EmbeddedLoader)(nil)
	_ StyleLoader = (*FilesystemLoader)(nil)
)
