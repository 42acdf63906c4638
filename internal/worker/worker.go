package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool runs tasks on a fixed set of goroutines behind a bounded queue.
type Pool interface {
	// Submit enqueues t and reports false when the queue is full or the pool is stopped.
	Submit(t Task) bool
	Stop()
}

// NewPool creates a pool with n workers and a queue of queueSize pending tasks.
// n<=0 defaults to 1, queueSize<0 defaults to 0 (hand-off only).
func NewPool(n, queueSize int) Pool {
	if n <= 0 {
		n = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	p := &pool{jobs: make(chan Task, queueSize)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	mu      sync.RWMutex
	stopped bool
	jobs    chan Task
	wg      sync.WaitGroup
}

func (p *pool) Submit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

// Stop drains queued tasks and waits for the workers to exit. Safe to call twice.
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
