package autoanchors

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps browser instances to limit memory (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// ErrPoolClosed is returned by Acquire after Close.
var ErrPoolClosed = errors.New("converter pool closed")

// ConverterPool hands out Converters to concurrent workers.
// Each converter owns its browser, so PDF rendering runs in parallel.
// A converter is built the first time no idle one is available.
type ConverterPool struct {
	opts []ConverterOption

	// idle holds released converters; slots holds one token per converter
	// that may still be built. Together they bound the pool to its size.
	idle  chan *Converter
	slots chan struct{}
	done  chan struct{}

	mu     sync.Mutex
	built  []*Converter
	closed bool
}

// NewConverterPool creates a pool of at most n converters built with opts.
func NewConverterPool(n int, opts ...ConverterOption) *ConverterPool {
	n = max(n, MinPoolSize)

	p := &ConverterPool{
		opts:  opts,
		idle:  make(chan *Converter, n),
		slots: make(chan struct{}, n),
		done:  make(chan struct{}),
	}
	for range n {
		p.slots <- struct{}{}
	}
	return p
}

// Acquire returns an idle converter or builds a new one while the pool has room.
// It blocks until one is released, ctx is done or the pool is closed.
func (p *ConverterPool) Acquire(ctx context.Context) (*Converter, error) {
	select {
	case <-p.done:
		return nil, ErrPoolClosed
	default:
	}

	// Prefer reuse: a warm converter may already hold a browser.
	select {
	case c := <-p.idle:
		return c, nil
	default:
	}

	select {
	case c := <-p.idle:
		return c, nil
	case <-p.slots:
		return p.build()
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.done:
		return nil, ErrPoolClosed
	}
}

// build creates a converter for a taken slot. The slot is given back on failure.
func (p *ConverterPool) build() (*Converter, error) {
	c, err := NewConverter(p.opts...)
	if err != nil {
		p.slots <- struct{}{}
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		_ = c.Close()
		return nil, ErrPoolClosed
	}
	p.built = append(p.built, c)
	return c, nil
}

// Release makes c available to the next Acquire. It is a no-op after Close.
func (p *ConverterPool) Release(c *Converter) {
	if c == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	// Never blocks: idle has room for every converter the pool can build.
	p.idle <- c
}

// Close wakes blocked Acquire calls and closes every converter built so far.
// Closing an already closed pool returns nil.
func (p *ConverterPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.done)
	built := p.built
	p.built = nil
	p.mu.Unlock()

	var errs []error
	for _, c := range built {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return cap(p.slots)
}

// ResolvePoolSize returns workers when positive, otherwise half of GOMAXPROCS
// clamped to [MinPoolSize, MaxPoolSize].
// GOMAXPROCS follows container CPU quotas once automaxprocs has run.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	return min(max(runtime.GOMAXPROCS(0)/cpuDivisor, MinPoolSize), MaxPoolSize)
}
