package utils

import (
	"sync"
	"time"
)

// PanicHandler receives the name of a job that panicked and the recovered value.
type PanicHandler func(job string, recovered any)

// WorkerPool manages a pool of goroutines with optional rate limiting.
// A rateLimitMs of 0 disables the limit.
type WorkerPool struct {
	maxWorkers  int
	rateLimitMs int
	semaphore   chan struct{}
	wg          sync.WaitGroup
	mu          sync.Mutex
	lastRequest time.Time
	onPanic     PanicHandler
}

// NewWorkerPool creates a WorkerPool with the given concurrency and rate limit.
func NewWorkerPool(maxWorkers, rateLimitMs int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		maxWorkers:  maxWorkers,
		rateLimitMs: rateLimitMs,
		semaphore:   make(chan struct{}, maxWorkers),
		lastRequest: time.Now(),
	}
}

// OnPanic makes the pool recover panicking jobs and report them to fn.
// Without a handler a panic crashes the process. Set it before submitting.
func (wp *WorkerPool) OnPanic(fn PanicHandler) *WorkerPool {
	wp.onPanic = fn
	return wp
}

// Submit enqueues a job for execution in the pool.
func (wp *WorkerPool) Submit(job func()) {
	wp.SubmitNamed("", job)
}

// SubmitNamed enqueues a job whose name is passed to the panic handler.
func (wp *WorkerPool) SubmitNamed(name string, job func()) {
	wp.wg.Add(1)
	wp.semaphore <- struct{}{}

	go func() {
		defer wp.wg.Done()
		defer func() { <-wp.semaphore }()
		if wp.onPanic != nil {
			defer func() {
				if r := recover(); r != nil {
					wp.onPanic(name, r)
				}
			}()
		}

		wp.enforceRateLimit()
		job()
	}()
}

// Wait blocks until all submitted jobs have completed.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

func (wp *WorkerPool) enforceRateLimit() {
	if wp.rateLimitMs <= 0 {
		return
	}

	wp.mu.Lock()
	defer wp.mu.Unlock()

	minInterval := time.Duration(wp.rateLimitMs) * time.Millisecond
	elapsed := time.Since(wp.lastRequest)
	if elapsed < minInterval {
		time.Sleep(minInterval - elapsed)
	}
	wp.lastRequest = time.Now()
}
