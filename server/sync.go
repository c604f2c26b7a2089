package server

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/motion/render"
)

// runOnce enqueues fn as a one-shot closure and blocks the calling
// goroutine until the server goroutine has executed it in queue order.
// Returns false without running fn if the server has stopped.
//
// This is the only blocking point in the command surface; the wait is
// bounded by the current queue depth.
func (s *Server) runOnce(fn func()) bool {
	done := make(chan struct{})
	ok := s.commands.push(Command{typ: cmdRunOnce, run: func() {
		defer close(done)
		fn()
	}})
	if !ok {
		return false
	}
	<-done
	return true
}

// Sync blocks until every command enqueued before the call has been
// applied. Returns false if the server has stopped. Useful as a frame
// boundary before DrainMessages when the caller wants all prior results.
func (s *Server) Sync() bool {
	return s.runOnce(func() {})
}

// CreateDefaultArtboardSync creates the file's default artboard and
// returns its handle before this call returns. Returns NilHandle on
// failure; no message is enqueued either way.
func (s *Server) CreateDefaultArtboardSync(file Handle) Handle {
	var h Handle
	s.runOnce(func() {
		h, _ = s.createArtboard(file, "", true)
	})
	return h
}

// CreateArtboardByNameSync is the synchronous variant of
// CreateArtboardByName. Returns NilHandle on failure.
func (s *Server) CreateArtboardByNameSync(file Handle, name string) Handle {
	var h Handle
	s.runOnce(func() {
		h, _ = s.createArtboard(file, name, false)
	})
	return h
}

// CreateDefaultAnimationSync creates the artboard's first animation and
// returns its handle. Returns NilHandle on failure.
func (s *Server) CreateDefaultAnimationSync(artboard Handle) Handle {
	var h Handle
	s.runOnce(func() {
		h, _ = s.createAnimation(artboard, 0, "", false)
	})
	return h
}

// CreateAnimationByNameSync is the synchronous variant of
// CreateAnimationByName. Returns NilHandle on failure.
func (s *Server) CreateAnimationByNameSync(artboard Handle, name string) Handle {
	var h Handle
	s.runOnce(func() {
		h, _ = s.createAnimation(artboard, 0, name, true)
	})
	return h
}

// CreateRenderTargetSync constructs a render target and returns its
// handle before this call returns. A context with GPU device access gets
// a texture target, otherwise a CPU pixmap target. Returns NilHandle for
// invalid dimensions or a stopped server.
func (s *Server) CreateRenderTargetSync(width, height int) Handle {
	var h Handle
	s.runOnce(func() {
		if width <= 0 || height <= 0 {
			return
		}
		var target render.RenderTarget
		if s.rc.HasDevice() {
			tt, err := render.NewTextureTarget(s.rc, width, height, gputypes.TextureFormatRGBA8Unorm)
			if err != nil {
				return
			}
			target = tt
		} else {
			target = render.NewPixmapTarget(width, height)
		}
		h = s.handles.Allocate()
		s.targets[h] = target
	})
	return h
}
