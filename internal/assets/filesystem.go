package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads styles from {basePath}/styles/{name}.css.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader rooted at basePath.
// Returns ErrInvalidBasePath if basePath is not a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, abs)
	}

	return &FilesystemLoader{basePath: abs}, nil
}

// LoadStyle reads styles/{name}.css under the base path.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.basePath, "styles", name+".css")
	if err := f.contain(path); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- path contained in basePath
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// contain checks that path, with symlinks resolved, stays under the base path.
// A path that does not exist yet is checked as is.
func (f *FilesystemLoader) contain(path string) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if !strings.HasPrefix(path, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrPathTraversal, path)
	}
	return nil
}
