package main

import (
	"context"

	autoanchors "github.com/alnah/go-autoanchors"
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input autoanchors.Input) (*autoanchors.Result, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*autoanchors.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire(ctx context.Context) (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// converterPool adapts autoanchors.ConverterPool to Pool.
type converterPool struct {
	pool *autoanchors.ConverterPool
}

// Compile-time check that converterPool implements Pool.
var _ Pool = (*converterPool)(nil)

// newConverterPool creates a pool of size converters built with opts.
func newConverterPool(size int, opts ...autoanchors.ConverterOption) Pool {
	return &converterPool{pool: autoanchors.NewConverterPool(size, opts...)}
}

func (p *converterPool) Acquire(ctx context.Context) (CLIConverter, error) {
	c, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (p *converterPool) Release(c CLIConverter) {
	if conv, ok := c.(*autoanchors.Converter); ok {
		p.pool.Release(conv)
	}
}

func (p *converterPool) Size() int {
	return p.pool.Size()
}

func (p *converterPool) Close() error {
	return p.pool.Close()
}
