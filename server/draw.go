package server

import (
	"fmt"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/render"
)

// DeleteRenderTarget destroys a render target created with
// CreateRenderTargetSync. Produces RenderTargetDeleted or DrawError.
func (s *Server) DeleteRenderTarget(requestID uint64, target Handle) {
	s.enqueue(Command{typ: cmdDeleteRenderTarget, requestID: requestID, handle: target})
}

// Draw renders one artboard into a target: validate, bind the context,
// align and draw, flush, present. Produces DrawComplete carrying the
// entry's DrawKey, or DrawError naming the first failed step.
func (s *Server) Draw(requestID uint64, target Handle, entry DrawEntry) {
	s.enqueue(Command{typ: cmdDraw, requestID: requestID, handle: target, entries: []DrawEntry{entry}})
}

// DrawBatch renders several artboards into one target with a single
// flush and present. Entries are drawn in order; a failing entry
// produces DrawError with its DrawKey and the batch continues with the
// next entry. Produces one DrawComplete or DrawError per entry.
func (s *Server) DrawBatch(requestID uint64, target Handle, entries []DrawEntry) {
	s.enqueue(Command{typ: cmdDrawBatch, requestID: requestID, handle: target, entries: entries})
}

func (s *Server) applyDeleteRenderTarget(c Command) {
	t, ok := s.targets[c.handle]
	if !ok {
		s.post(Message{Type: MsgDrawError, RequestID: c.requestID, Err: fmt.Sprintf("invalid render target handle %d", c.handle)})
		return
	}
	delete(s.targets, c.handle)
	if tt, ok := t.(*render.TextureTarget); ok {
		tt.Destroy()
	}
	s.post(Message{Type: MsgRenderTargetDeleted, RequestID: c.requestID, Handle: c.handle})
}

func (s *Server) applyDraw(c Command) {
	s.applyDrawBatch(c)
}

func (s *Server) applyDrawBatch(c Command) {
	drawError := func(key uint64, err error) {
		s.post(Message{Type: MsgDrawError, RequestID: c.requestID, Handle: c.handle, DrawKey: key, Err: err.Error()})
	}
	target, ok := s.targets[c.handle]
	if !ok {
		// No per-entry keys can be honored without a target; one message
		// covers the whole batch.
		drawError(0, fmt.Errorf("%w: render target %d", ErrInvalidHandle, c.handle))
		return
	}
	if err := s.rc.MakeCurrent(); err != nil {
		drawError(0, fmt.Errorf("bind context: %w", err))
		return
	}
	frame := motion.RectWH(float64(target.Width()), float64(target.Height()))
	drawn := make([]uint64, 0, len(c.entries))
	for _, e := range c.entries {
		ae, ok := s.artboards[e.Artboard]
		if !ok {
			drawError(e.DrawKey, fmt.Errorf("%w: artboard %d", ErrInvalidHandle, e.Artboard))
			continue
		}
		// A state machine handle is optional; when present it must be
		// live so callers notice a stale pairing instead of silently
		// drawing a static frame.
		if e.StateMachine != NilHandle {
			if _, ok := s.machines[e.StateMachine]; !ok {
				drawError(e.DrawKey, fmt.Errorf("%w: state machine %d", ErrInvalidHandle, e.StateMachine))
				continue
			}
		}
		view := motion.ComputeAlignment(e.Fit, e.Alignment, frame, ae.artboard.Bounds(), e.ScaleFactor)
		if err := ae.artboard.Draw(target, view); err != nil {
			drawError(e.DrawKey, fmt.Errorf("draw: %w", err))
			continue
		}
		drawn = append(drawn, e.DrawKey)
	}
	if len(drawn) == 0 {
		return
	}
	if err := s.rc.Flush(); err != nil {
		for _, key := range drawn {
			drawError(key, fmt.Errorf("flush: %w", err))
		}
		return
	}
	if err := s.rc.Present(target); err != nil {
		for _, key := range drawn {
			drawError(key, fmt.Errorf("present: %w", err))
		}
		return
	}
	for _, key := range drawn {
		s.post(Message{Type: MsgDrawComplete, RequestID: c.requestID, Handle: c.handle, DrawKey: key})
	}
}
