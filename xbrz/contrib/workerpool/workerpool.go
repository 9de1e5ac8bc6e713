// Copyright 2025 The go-xbrz Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// splitting image rows across goroutines. A Pool is created once and reused
// across many scale calls, so each call pays neither goroutine spawn nor
// channel allocation.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, frame := range frames {
//	    pool.ParallelForBands(frame.Height, 16, func(start, end int) {
//	        scaleRows(frame, start, end)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// cursor is the shared next-band counter. Workers hammer it with atomic
// adds, so it gets a cache line of its own.
type cursor struct {
	_    cpu.CacheLinePad
	next atomic.Int64
	_    cpu.CacheLinePad
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelForBands executes fn over [0, n) in bands of bandSize indices
// that workers claim one at a time. Use it when the cost per index varies,
// as it does between flat and edge-rich image rows. Blocks until all work
// completes.
//
// Every band except possibly the last has exactly bandSize indices.
func (p *Pool) ParallelForBands(n int, bandSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if bandSize <= 0 {
		bandSize = 1
	}

	numBands := (n + bandSize - 1) / bandSize
	workers := min(p.numWorkers, numBands)
	if workers == 1 || p.closed.Load() {
		for start := 0; start < n; start += bandSize {
			fn(start, min(start+bandSize, n))
		}
		return
	}

	var cur cursor
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					band := int(cur.next.Add(1)) - 1
					start := band * bandSize
					if start >= n {
						return
					}
					fn(start, min(start+bandSize, n))
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
