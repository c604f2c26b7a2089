package server

import (
	"sync"
	"testing"
)

func TestHandleAllocator_Monotonic(t *testing.T) {
	var a handleAllocator
	prev := NilHandle
	for i := 0; i < 1000; i++ {
		h := a.Allocate()
		if h == NilHandle {
			t.Fatal("Allocate() returned NilHandle")
		}
		if h <= prev {
			t.Fatalf("Allocate() = %d after %d, want strictly increasing", h, prev)
		}
		prev = h
	}
}

func TestHandleAllocator_ConcurrentUnique(t *testing.T) {
	var a handleAllocator
	const goroutines, perGoroutine = 8, 500

	results := make([][]Handle, goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			out := make([]Handle, perGoroutine)
			for i := range out {
				out[i] = a.Allocate()
			}
			results[g] = out
		}(g)
	}
	wg.Wait()

	seen := make(map[Handle]bool, goroutines*perGoroutine)
	for _, out := range results {
		for _, h := range out {
			if seen[h] {
				t.Fatalf("handle %d allocated twice", h)
			}
			seen[h] = true
		}
	}
}
