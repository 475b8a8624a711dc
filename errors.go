package autoanchors

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyContent   = errors.New("content cannot be empty")
	ErrInvalidFormat  = errors.New("invalid input format")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Style registration errors.
	ErrNilRegistrar      = errors.New("style registrar cannot be nil")
	ErrInvalidInstallURL = errors.New("invalid install URL")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
