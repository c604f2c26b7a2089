package server

import "sync"

// commandQueue is the multi-producer, single-consumer queue feeding the
// server goroutine. Pushing never blocks; popping blocks until a command
// arrives or the queue is closed and fully drained, so commands enqueued
// before close (including one-shot closures with waiters) always execute.
type commandQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []Command
	closed bool
}

func newCommandQueue() *commandQueue {
	q := &commandQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends a command. Returns false if the queue is closed, in which
// case the command was not enqueued.
func (q *commandQueue) push(c Command) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.items = append(q.items, c)
	q.cond.Signal()
	return true
}

// pop removes the next command in FIFO order, blocking while the queue is
// open and empty. The second result is false once the queue is closed and
// empty.
func (q *commandQueue) pop() (Command, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return Command{}, false
	}
	c := q.items[0]
	// Avoid retaining the popped command's payloads.
	q.items[0] = Command{}
	q.items = q.items[1:]
	return c, true
}

// close stops accepting commands and wakes the consumer.
func (q *commandQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

// messageQueue accumulates messages produced by the server goroutine
// until a caller drains them. Drains never block and never return the
// same message twice.
type messageQueue struct {
	mu    sync.Mutex
	items []Message
}

func (q *messageQueue) push(m Message) {
	q.mu.Lock()
	q.items = append(q.items, m)
	q.mu.Unlock()
}

// drain returns everything accumulated since the previous drain, in
// production order. Returns nil when nothing is queued.
func (q *messageQueue) drain() []Message {
	q.mu.Lock()
	items := q.items
	q.items = nil
	q.mu.Unlock()
	return items
}
