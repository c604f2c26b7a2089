// Package motion provides an asynchronous runtime for vector animation
// scenes in the GoGPU ecosystem.
//
// # Overview
//
// motion decouples application goroutines from a single rendering-capable
// worker goroutine through a command/message queue. Callers submit commands
// (load a file, create an artboard, set a state-machine input, draw a frame)
// from any goroutine; one dedicated server goroutine owns every engine
// resource and every call into the animation engine, and publishes results
// as messages that callers drain on their own schedule.
//
// The animation engine itself is a black box behind the motion/engine
// interfaces. The motion/server package implements the command server;
// motion/render provides CPU and GPU render targets; motion/codec decodes
// asset payloads for engine implementations.
//
// # Quick Start
//
//	srv := server.New(eng, render.NewContext(nil))
//	srv.Start()
//	defer srv.Stop()
//
//	srv.LoadFile(1, data)
//
//	// Once per display frame:
//	srv.Dispatch(listener)
//
// # Architecture
//
// This root package holds the shared geometry and layout math: Point, Rect,
// Matrix, and the Fit/Alignment rules that map artboard bounds into a
// target surface. Sub-packages:
//   - engine: animation engine boundary (interfaces only)
//   - server: command queue, resource tables, draw dispatch
//   - render: render contexts and targets (CPU pixmap, wgpu texture)
//   - codec: image/font asset decoding helpers
//   - enginetest: in-memory reference engine for tests
package motion
