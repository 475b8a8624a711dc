package main

import (
	"io"
	"os"

	autoanchors "github.com/alnah/go-autoanchors"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	NewPool func(size int, opts ...autoanchors.ConverterOption) Pool
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		NewPool: newConverterPool,
	}
}
