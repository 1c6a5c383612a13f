// Package background runs fire-and-forget side effects outside the request that caused them.
package background

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type job struct {
	name string
	task func(ctx context.Context) error
}

type Pool struct {
	queue   chan job
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewPool starts size workers reading from a queue of capacity queueSize.
// Each task gets its own context bounded by timeout.
func NewPool(size, queueSize int, timeout time.Duration) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{
		queue:   make(chan job, queueSize),
		timeout: timeout,
	}
	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for j := range p.queue {
		p.exec(j)
	}
}

func (p *Pool) exec(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("background task panicked", zap.String("task", j.name), zap.String("panic", fmt.Sprint(r)))
		}
	}()

	if err := j.task(ctx); err != nil {
		zap.L().Warn("background task failed", zap.String("task", j.name), zap.Error(err))
	}
}

// Go queues task without blocking. It reports false when the queue is full or the pool is closed.
func (p *Pool) Go(name string, task func(ctx context.Context) error) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		zap.L().Warn("background pool closed, task dropped", zap.String("task", name))
		return false
	}

	select {
	case p.queue <- job{name: name, task: task}:
		return true
	default:
		zap.L().Warn("background queue full, task dropped", zap.String("task", name))
		return false
	}
}

// Close stops accepting tasks and waits for the queued ones to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}
