// Package enginetest provides an in-memory engine.Engine for tests.
//
// Files are described by a JSON FileSpec instead of a binary animation
// format, and every object the engine mints records the calls made
// against it, so tests can assert on what the motion server did without
// a real runtime or a GPU.
package enginetest
