package main

import (
	"errors"
	"os"

	autoanchors "github.com/alnah/go-autoanchors"
	"github.com/alnah/go-autoanchors/internal/config"
)

// Exit codes for the autoanchors CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, autoanchors.ErrBrowserConnect) ||
		errors.Is(err, autoanchors.ErrPageCreate) ||
		errors.Is(err, autoanchors.ErrPageLoad) ||
		errors.Is(err, autoanchors.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, autoanchors.ErrEmptyContent) ||
		errors.Is(err, autoanchors.ErrInvalidFormat) ||
		errors.Is(err, autoanchors.ErrInvalidInstallURL) ||
		errors.Is(err, autoanchors.ErrStyleNotFound) ||
		errors.Is(err, autoanchors.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}
