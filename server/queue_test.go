package server

import (
	"sync"
	"testing"
)

func TestCommandQueue_FIFO(t *testing.T) {
	q := newCommandQueue()
	for i := uint64(1); i <= 5; i++ {
		if !q.push(Command{typ: cmdLoadFile, requestID: i}) {
			t.Fatalf("push(%d) = false", i)
		}
	}
	for i := uint64(1); i <= 5; i++ {
		c, ok := q.pop()
		if !ok {
			t.Fatalf("pop() closed early at %d", i)
		}
		if c.requestID != i {
			t.Errorf("pop() requestID = %d, want %d", c.requestID, i)
		}
	}
}

func TestCommandQueue_CloseDrainsPending(t *testing.T) {
	q := newCommandQueue()
	q.push(Command{requestID: 1})
	q.push(Command{requestID: 2})
	q.close()

	// Commands enqueued before close still come out, in order.
	for want := uint64(1); want <= 2; want++ {
		c, ok := q.pop()
		if !ok || c.requestID != want {
			t.Fatalf("pop() = (%d, %v), want (%d, true)", c.requestID, ok, want)
		}
	}
	if _, ok := q.pop(); ok {
		t.Error("pop() after drain = true, want false")
	}
}

func TestCommandQueue_PushAfterClose(t *testing.T) {
	q := newCommandQueue()
	q.close()
	if q.push(Command{}) {
		t.Error("push() after close = true, want false")
	}
}

func TestCommandQueue_PopWakesOnPush(t *testing.T) {
	q := newCommandQueue()
	got := make(chan Command, 1)
	go func() {
		c, _ := q.pop()
		got <- c
	}()
	q.push(Command{requestID: 42})
	if c := <-got; c.requestID != 42 {
		t.Errorf("pop() requestID = %d, want 42", c.requestID)
	}
}

func TestCommandQueue_ConcurrentProducers(t *testing.T) {
	q := newCommandQueue()
	const producers, perProducer = 8, 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.push(Command{typ: cmdRunOnce})
			}
		}()
	}
	wg.Wait()
	q.close()

	n := 0
	for {
		if _, ok := q.pop(); !ok {
			break
		}
		n++
	}
	if want := producers * perProducer; n != want {
		t.Errorf("drained %d commands, want %d", n, want)
	}
}

func TestMessageQueue_Drain(t *testing.T) {
	q := &messageQueue{}
	if got := q.drain(); len(got) != 0 {
		t.Errorf("drain() on empty queue = %d messages, want 0", len(got))
	}

	q.push(Message{RequestID: 1})
	q.push(Message{RequestID: 2})
	q.push(Message{RequestID: 3})

	got := q.drain()
	if len(got) != 3 {
		t.Fatalf("drain() = %d messages, want 3", len(got))
	}
	for i, m := range got {
		if m.RequestID != uint64(i+1) {
			t.Errorf("drain()[%d].RequestID = %d, want %d", i, m.RequestID, i+1)
		}
	}

	// A second drain must not repeat anything.
	if got := q.drain(); len(got) != 0 {
		t.Errorf("second drain() = %d messages, want 0", len(got))
	}
}
