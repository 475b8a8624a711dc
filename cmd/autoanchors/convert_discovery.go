package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	autoanchors "github.com/alnah/go-autoanchors"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .html, .htm, .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// anchoredSuffix marks HTML outputs. Discovery skips them so a second run
// does not anchor a page twice.
const anchoredSuffix = ".anchored"

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Format     string // autoanchors.FormatHTML or autoanchors.FormatMarkdown
}

// formatFor returns the input format for path, or "" if unsupported.
func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return autoanchors.FormatHTML
	case ".md", ".markdown":
		return autoanchors.FormatMarkdown
	}
	return ""
}

// isAnchoredOutput reports whether path looks like a file this tool wrote.
func isAnchoredOutput(path string) bool {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.HasSuffix(base, anchoredSuffix)
}

// discoverFiles finds all files to convert under inputPath.
// outputExt is ".html" or ".pdf".
func discoverFiles(inputPath, outputDir, outputExt string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		format := formatFor(inputPath)
		if format == "" {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath := resolveOutputPath(inputPath, outputDir, "", outputExt)
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath, Format: format}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		format := formatFor(path)
		if format == "" || isAnchoredOutput(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath, outputExt)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath, Format: format})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the output path for an input file.
// HTML outputs are named {name}.anchored.html, PDFs {name}.pdf. An outputDir
// ending in outputExt is used as the file path itself.
func resolveOutputPath(inputPath, outputDir, baseInputDir, outputExt string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	name := base + outputExt
	if outputExt == ".html" {
		name = base + anchoredSuffix + outputExt
	}

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}

	if strings.HasSuffix(outputDir, outputExt) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name)
		}
	}

	return filepath.Join(outputDir, name)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > autoanchors.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, autoanchors.MaxPoolSize)
	}
	return nil
}
