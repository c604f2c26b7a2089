// Package engine defines the boundary between the motion runtime and an
// animation engine implementation.
//
// The runtime treats the engine as a black box: it never inspects file
// contents, never walks scene graphs, and never owns drawing algorithms.
// Everything it needs is expressed by the interfaces here: loading files,
// instantiating artboards and state machines, reading and writing typed
// inputs and view-model properties, and drawing an artboard into a render
// target.
//
// Engine implementations live outside this module. Package enginetest
// provides an in-memory reference implementation used by the motion tests.
package engine
