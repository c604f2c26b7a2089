// Package server implements the motion command server: a single worker
// goroutine that owns every engine resource and every graphics call,
// driven by commands submitted from arbitrary goroutines.
//
// # Model
//
// Callers enqueue commands through the Server's methods; enqueueing never
// blocks. The server goroutine drains the queue in FIFO order, applies
// each command to its resource tables and the animation engine, and
// publishes results as messages. Callers retrieve accumulated messages
// with DrainMessages, or have them delivered as callbacks with Dispatch,
// typically once per display frame.
//
// Resources are identified by opaque uint64 handles allocated by the
// server, strictly increasing and never reused. Handle 0 is "no handle":
// as a request ID it means no reply is expected; as a state-machine handle
// in a draw it means "static artboard".
//
// A small set of operations is synchronous: artboard, animation and
// render-target creation variants whose result the caller needs before
// its next statement. These block the calling goroutine until the server
// goroutine executes a one-shot closure in queue order, and return the
// sentinel handle 0 on failure.
package server
