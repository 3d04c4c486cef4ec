// File: dispatch/executor.go
package dispatch

import (
	"sync"
	"time"
)

// task is a unit of work submitted to the executor. The dispatcher submits
// exactly one task per Dispatch call (spec §4.1, "Scheduling model").
type task func()

// executor is a bounded worker pool backed by an unbounded FIFO task queue,
// modeling the "core size / max size / keep-alive" thread pool parameters
// from spec §6. coreSize workers run for the executor's lifetime; extra
// workers up to maxSize are spawned when the queue backs up and retire
// after sitting idle for keepAlive.
type executor struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []task
	closed bool

	coreSize  int
	maxSize   int
	keepAlive time.Duration
	live      int

	wg sync.WaitGroup
}

func newExecutor(coreSize, maxSize int, keepAlive time.Duration) *executor {
	if coreSize < 1 {
		coreSize = 1
	}
	if maxSize < coreSize {
		maxSize = coreSize
	}
	if keepAlive <= 0 {
		keepAlive = 30 * time.Second
	}
	e := &executor{
		coreSize:  coreSize,
		maxSize:   maxSize,
		keepAlive: keepAlive,
	}
	e.cond = sync.NewCond(&e.mu)
	return e
}

// start launches the core workers. Safe to call once.
func (e *executor) start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := 0; i < e.coreSize; i++ {
		e.live++
		e.wg.Add(1)
		go e.runWorker(true)
	}
}

// submit enqueues t and, if the backlog warrants it and capacity remains,
// spins up an overflow worker. Never blocks: the queue is unbounded.
func (e *executor) submit(t task) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.queue = append(e.queue, t)
	growOverflow := len(e.queue) > e.live && e.live < e.maxSize
	if growOverflow {
		e.live++
		e.wg.Add(1)
	}
	e.mu.Unlock()

	e.cond.Signal()
	if growOverflow {
		go e.runWorker(false)
	}
}

// runWorker pulls tasks until the executor closes. Overflow (non-core)
// workers additionally retire after keepAlive of no work.
func (e *executor) runWorker(core bool) {
	defer e.wg.Done()

	for {
		e.mu.Lock()
		deadline := time.Now().Add(e.keepAlive)
		for len(e.queue) == 0 && !e.closed {
			if core {
				e.cond.Wait()
				continue
			}
			if !e.waitUntil(deadline) {
				// Idle timeout: retire this overflow worker.
				e.live--
				e.mu.Unlock()
				return
			}
		}
		if e.closed {
			e.live--
			e.mu.Unlock()
			return
		}
		t := e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()

		t()
	}
}

// waitUntil blocks on the condition variable until signalled or deadline
// passes, returning false on timeout. Must be called with e.mu held; it
// re-acquires the lock before returning, matching sync.Cond.Wait's
// contract.
func (e *executor) waitUntil(deadline time.Time) bool {
	woke := make(chan struct{})
	timer := time.AfterFunc(time.Until(deadline), func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		close(woke)
		e.cond.Broadcast()
	})

	e.cond.Wait()

	select {
	case <-woke:
		timer.Stop()
		return false
	default:
		timer.Stop()
		return true
	}
}

// stop cancels queued tasks and stops accepting new ones. Running tasks are
// not interrupted (spec §5: the only blocking call is the user Receive
// function, which owns the actor's lock for its duration).
func (e *executor) stop() {
	e.mu.Lock()
	e.closed = true
	e.queue = nil
	e.mu.Unlock()
	e.cond.Broadcast()
	e.wg.Wait()
}
