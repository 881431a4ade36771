// Package sched provides schedulers for deferred inspector work.
//
// All schedulers run callbacks one at a time and in the order they were
// deferred.
package sched

import (
	"context"
	"sync"

	"github.com/signadot/tony-format/go-inspect/debug"
)

// Immediate runs each callback as soon as it is deferred.
type Immediate struct{}

func (Immediate) Defer(f func()) {
	f()
}

// Queue holds deferred callbacks until they are run by Step, Drain or Run.
// Defer may be called from any goroutine; callbacks only run on the
// goroutine calling Step, Drain or Run.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
}

func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

func (q *Queue) Defer(f func()) {
	q.mu.Lock()
	q.pending = append(q.pending, f)
	n := len(q.pending)
	q.mu.Unlock()
	if debug.Sched() {
		debug.Logf("sched: deferred callback, %d pending\n", n)
	}
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Len returns the number of callbacks waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Step runs one turn: the callbacks pending when Step is called. Callbacks
// deferred during the turn wait for the next one. It returns the number of
// callbacks run.
func (q *Queue) Step() int {
	q.mu.Lock()
	turn := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, f := range turn {
		f()
	}
	if debug.Sched() && len(turn) > 0 {
		debug.Logf("sched: ran %d callbacks\n", len(turn))
	}
	return len(turn)
}

// Drain runs turns until no callbacks are pending and returns the total
// number run.
func (q *Queue) Drain() int {
	ttl := 0
	for {
		n := q.Step()
		if n == 0 {
			return ttl
		}
		ttl += n
	}
}

// Run drains the queue each time callbacks are deferred, until ctx is done.
func (q *Queue) Run(ctx context.Context) error {
	for {
		q.Drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.wake:
		}
	}
}
