// Package worker decodes batches of positions on a pool of goroutines.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/fengate/internal/hashing"
)

// WorkItem is one line of input to decode.
type WorkItem struct {
	Line  string
	Index int // Position in the input, used to restore order
}

// ProcessResult is the outcome of decoding one line.
type ProcessResult struct {
	Index    int
	Line     string
	Snapshot string
	Pieces   int
	Position hashing.Signature
	Issues   []error
}

// OK reports whether the line decoded without issues.
func (r ProcessResult) OK() bool {
	return len(r.Issues) == 0
}

// ProcessFunc decodes a single work item. It runs concurrently and must not
// share mutable state between calls.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed number of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Defaults to 1 worker and a buffer of 16.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  16,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full. It returns the
// context error if ctx is done first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop makes workers skip items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ProcessLines runs every line through a new pool and returns the results
// in input order. If ctx is cancelled before every line is queued, the pool
// stops and the results gathered so far are returned with the context error.
func ProcessLines(ctx context.Context, lines []string, processFunc ProcessFunc, opts ...PoolOption) ([]ProcessResult, error) {
	p := NewPool(processFunc, opts...)
	p.Start()

	var submitErr error
	go func() {
		defer p.Close()
		for i, line := range lines {
			if err := p.Submit(ctx, WorkItem{Line: line, Index: i}); err != nil {
				submitErr = err
				p.Stop()
				return
			}
		}
	}()

	results := make([]ProcessResult, 0, len(lines))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	return results, submitErr
}
