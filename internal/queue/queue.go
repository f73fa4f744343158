// Package queue provides the serialized refresh queue that coalesces UI
// refresh work after cover assignments change. Tasks run strictly one at a
// time in submission order; there is no priority and no cancellation.
package queue

import (
	"sync"
	"time"
)

// Task is one unit of refresh work.
type Task func()

const (
	// defaultPollInterval / defaultMaxPolls bound how long a task waits
	// for an in-flight render before running anyway.
	defaultPollInterval = 100 * time.Millisecond
	defaultMaxPolls     = 10
)

// RefreshQueue executes tasks sequentially on a single worker. Before each
// task runs, the queue polls the render-done predicate up to the iteration
// cap, then abandons the wait and runs the task regardless: a stale but
// eventually-consistent refresh beats blocking forever.
type RefreshQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	tasks  []Task
	closed bool
	done   chan struct{}

	renderDone   func() bool
	pollInterval time.Duration
	maxPolls     int
}

// Option adjusts queue construction.
type Option func(*RefreshQueue)

// WithPollInterval overrides the render-wait polling interval.
func WithPollInterval(d time.Duration) Option {
	return func(q *RefreshQueue) { q.pollInterval = d }
}

// WithMaxPolls overrides the render-wait iteration cap.
func WithMaxPolls(n int) Option {
	return func(q *RefreshQueue) { q.maxPolls = n }
}

// New starts a queue. renderDone reports whether the external render has
// finished; nil means no render gate and tasks run immediately.
func New(renderDone func() bool, opts ...Option) *RefreshQueue {
	q := &RefreshQueue{
		done:         make(chan struct{}),
		renderDone:   renderDone,
		pollInterval: defaultPollInterval,
		maxPolls:     defaultMaxPolls,
	}
	q.cond = sync.NewCond(&q.mu)
	for _, opt := range opts {
		opt(q)
	}
	go q.run()
	return q
}

// Enqueue appends a task. Once enqueued a task cannot be retracted.
// Enqueueing on a closed queue is a no-op.
func (q *RefreshQueue) Enqueue(t Task) {
	if t == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.tasks = append(q.tasks, t)
	q.cond.Signal()
}

// Close stops accepting tasks, runs what was already enqueued, and waits
// for the worker to finish.
func (q *RefreshQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done
		return
	}
	q.closed = true
	q.cond.Signal()
	q.mu.Unlock()
	<-q.done
}

// run is the worker loop: pop in FIFO order, gate on the render, execute.
func (q *RefreshQueue) run() {
	defer close(q.done)
	for {
		q.mu.Lock()
		for len(q.tasks) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.tasks) == 0 && q.closed {
			q.mu.Unlock()
			return
		}
		t := q.tasks[0]
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		q.waitForRender()
		t()
	}
}

// waitForRender polls the render predicate up to the cap, then gives up
// silently; the exhausted wait is not an error.
func (q *RefreshQueue) waitForRender() {
	if q.renderDone == nil {
		return
	}
	for i := 0; i < q.maxPolls; i++ {
		if q.renderDone() {
			return
		}
		time.Sleep(q.pollInterval)
	}
}
