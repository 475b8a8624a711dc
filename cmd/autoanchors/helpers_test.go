package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	autoanchors "github.com/alnah/go-autoanchors"
)

// mockConverter returns a fixed result, or err, and records its inputs.
type mockConverter struct {
	mu     sync.Mutex
	inputs []autoanchors.Input
	result *autoanchors.Result
	err    error
}

func (m *mockConverter) Convert(_ context.Context, input autoanchors.Input) (*autoanchors.Result, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &autoanchors.Result{HTML: []byte("<p>converted</p>"), PDF: []byte("%PDF")}, nil
}

// mockPool hands out a single shared converter.
type mockPool struct {
	conv       CLIConverter
	size       int
	acquireErr error
	closed     bool
}

func (p *mockPool) Acquire(context.Context) (CLIConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) {}

func (p *mockPool) Size() int {
	return p.size
}

func (p *mockPool) Close() error {
	p.closed = true
	return nil
}

// testEnv returns an Environment writing to the given buffers with the real pool.
func testEnv(stdout, stderr io.Writer) *Environment {
	return &Environment{
		Stdout:  stdout,
		Stderr:  stderr,
		NewPool: newConverterPool,
	}
}

// nopLogger discards all log output.
func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

// readFile reads path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
