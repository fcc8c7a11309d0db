// Package pool implements a fixed-size worker pool: callers schedule
// zero-argument thunks, the pool dispatches them in FIFO order onto
// on-demand-spawned worker goroutines, and Wait blocks until every
// previously scheduled thunk has returned.
//
// A Pool is the in-process analogue of the "thread pool" assignment this
// module grew out of: one dedicated dispatcher, up to N lazily-spawned
// workers, and a completion barrier, with none of work stealing, priority,
// in-flight cancellation, per-job results, post-construction resizing, or
// thread affinity.
package pool

import (
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// Thunk is a zero-argument, no-return callable with all of its inputs
// already captured. A Thunk must not call Wait on the Pool it was
// scheduled on — that would self-deadlock, since the running thunk itself
// keeps the job counter positive.
type Thunk func()

// Pool is a fixed-capacity worker pool. The zero value is not usable; use
// New. A Pool must not be copied after first use — its mutable state is
// guarded by mutexes, and a copy would duplicate (and desynchronize) those
// locks as well as the worker slice.
type Pool struct {
	capacity int
	logger   *zap.Logger

	panicHandler func(recovered any, stack []byte)

	// job queue: FIFO of pending thunks, plus the running flag. Paired
	// with queueCond so Schedule can signal "queue non-empty" and the
	// dispatcher can block on it.
	queueMu   sync.Mutex
	queueCond *sync.Cond
	jobs      []Thunk
	running   bool

	// completion barrier: jobsCount is the number of thunks scheduled but
	// not yet finished.
	countMu   sync.Mutex
	countCond *sync.Cond
	jobsCount int

	// worker bookkeeping: the set of spawned workers and how many are
	// currently idle. A worker signals workersCond when it goes idle
	// (including right after spawning), and the dispatcher waits on it
	// when none are idle and capacity is exhausted.
	workersMu    sync.Mutex
	workersCond  *sync.Cond
	workers      []*workerSlot
	wg           sync.WaitGroup
	dispatchDone chan struct{}
}

// New constructs a Pool that spawns at most capacity workers. The
// dispatcher goroutine is started immediately; workers are spawned lazily
// as jobs demand them.
func New(capacity int, opts ...Option) (*Pool, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	p := &Pool{
		capacity:     capacity,
		logger:       zap.NewNop(),
		running:      true,
		dispatchDone: make(chan struct{}),
	}
	p.queueCond = sync.NewCond(&p.queueMu)
	p.countCond = sync.NewCond(&p.countMu)
	p.workersCond = sync.NewCond(&p.workersMu)

	for _, opt := range opts {
		opt(p)
	}

	go p.dispatch()

	return p, nil
}

// Schedule enqueues thunk to be run by some worker once every thunk
// scheduled before it has been dequeued. Schedule does not block beyond
// the cost of a queue push and a counter increment; it never blocks on
// worker availability. Once Close has drained the pool and marked it
// closed, Schedule returns ErrClosed.
func (p *Pool) Schedule(thunk Thunk) error {
	p.queueMu.Lock()
	if !p.running {
		p.queueMu.Unlock()
		return ErrClosed
	}
	// Count the thunk before the dispatcher can see it, so a worker can
	// never finish it (and decrement) ahead of the increment.
	p.incrementJobsCount()
	p.jobs = append(p.jobs, thunk)
	p.queueMu.Unlock()

	p.queueCond.Signal()
	return nil
}

// Wait blocks until every thunk scheduled before this call returns. Wait
// is idempotent, may be called concurrently by multiple goroutines, and
// must never be called from inside a thunk running on this same Pool.
func (p *Pool) Wait() {
	p.countMu.Lock()
	for p.jobsCount > 0 {
		p.countCond.Wait()
	}
	p.countMu.Unlock()
}

// Close drains every outstanding thunk (as Wait does), then tears down
// the dispatcher and every spawned worker. Close must not be called while
// any goroutine is still calling Schedule. After Close returns, no
// goroutine owned by the Pool is alive.
func (p *Pool) Close() error {
	p.Wait()

	p.queueMu.Lock()
	p.running = false
	p.queueMu.Unlock()
	p.queueCond.Broadcast()

	p.workersMu.Lock()
	for _, w := range p.workers {
		close(w.jobs)
	}
	p.workersMu.Unlock()
	p.workersCond.Broadcast()

	<-p.dispatchDone
	p.wg.Wait()
	return nil
}

// Capacity returns N, the maximum number of workers this Pool may spawn.
func (p *Pool) Capacity() int {
	return p.capacity
}

// CurrentWorkers returns how many workers have been spawned so far.
// Monotonically nondecreasing until Close.
func (p *Pool) CurrentWorkers() int {
	p.workersMu.Lock()
	defer p.workersMu.Unlock()
	return len(p.workers)
}

func (p *Pool) incrementJobsCount() {
	p.countMu.Lock()
	p.jobsCount++
	p.countMu.Unlock()
}

func (p *Pool) decrementJobsCount() {
	p.countMu.Lock()
	p.jobsCount--
	if p.jobsCount == 0 {
		p.countCond.Broadcast()
	}
	p.countMu.Unlock()
}

// invoke runs thunk, recovering any panic it lets escape and routing it to
// panicHandler if one was configured, or to the logger otherwise. It never
// lets a panic propagate past itself, so callers of invoke may rely on
// always returning normally.
func (p *Pool) invoke(thunk Thunk) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		buf := make([]byte, 4096)
		buf = buf[:runtime.Stack(buf, false)]
		if p.panicHandler != nil {
			p.panicHandler(r, buf)
			return
		}
		p.logger.Error("recovered panic from scheduled thunk",
			zap.Any("panic", r),
			zap.ByteString("stack", buf),
		)
	}()
	thunk()
}
