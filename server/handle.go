package server

import "sync/atomic"

// Handle is an opaque identifier for a server-owned resource.
//
// Handles are unique for the lifetime of a Server instance, strictly
// increasing, and never reused after deletion. They are allocated only by
// the server's allocator, never derived from pointers.
type Handle uint64

// NilHandle is the zero handle: "absent", "static", or "fire-and-forget"
// depending on context.
const NilHandle Handle = 0

// handleAllocator hands out strictly increasing handles. The counter is
// the only server state shared across goroutines without confinement, so
// it is atomic.
type handleAllocator struct {
	next atomic.Uint64
}

// Allocate returns the next handle. Safe from any goroutine.
func (a *handleAllocator) Allocate() Handle {
	return Handle(a.next.Add(1))
}
