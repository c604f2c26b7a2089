package server

import "github.com/gogpu/motion"

// PointerMove forwards a pointer move to a state machine. The point is in
// surface coordinates; the server maps it into artboard space using the
// same fit and alignment the caller draws with. Pointer events are fired
// per input event, so an invalid handle is ignored without a message.
func (s *Server) PointerMove(sm Handle, p motion.Point, fit motion.Fit, align motion.Alignment, surfaceWidth, surfaceHeight, scaleFactor float64) {
	s.enqueue(Command{
		typ: cmdPointerMove, handle: sm, point: p,
		fit: fit, align: align,
		width: surfaceWidth, height: surfaceHeight, scale: scaleFactor,
	})
}

// PointerDown forwards a pointer press. See PointerMove for coordinate
// handling and error policy.
func (s *Server) PointerDown(sm Handle, p motion.Point, fit motion.Fit, align motion.Alignment, surfaceWidth, surfaceHeight, scaleFactor float64) {
	s.enqueue(Command{
		typ: cmdPointerDown, handle: sm, point: p,
		fit: fit, align: align,
		width: surfaceWidth, height: surfaceHeight, scale: scaleFactor,
	})
}

// PointerUp forwards a pointer release. See PointerMove.
func (s *Server) PointerUp(sm Handle, p motion.Point, fit motion.Fit, align motion.Alignment, surfaceWidth, surfaceHeight, scaleFactor float64) {
	s.enqueue(Command{
		typ: cmdPointerUp, handle: sm, point: p,
		fit: fit, align: align,
		width: surfaceWidth, height: surfaceHeight, scale: scaleFactor,
	})
}

// PointerExit forwards the pointer leaving the surface. See PointerMove.
func (s *Server) PointerExit(sm Handle, p motion.Point, fit motion.Fit, align motion.Alignment, surfaceWidth, surfaceHeight, scaleFactor float64) {
	s.enqueue(Command{
		typ: cmdPointerExit, handle: sm, point: p,
		fit: fit, align: align,
		width: surfaceWidth, height: surfaceHeight, scale: scaleFactor,
	})
}

func (s *Server) applyPointerEvent(c Command) {
	e, ok := s.machines[c.handle]
	if !ok {
		return
	}
	ae, ok := s.artboards[e.artboard]
	if !ok {
		return
	}
	frame := motion.RectWH(c.width, c.height)
	m := motion.ComputeAlignment(c.fit, c.align, frame, ae.artboard.Bounds(), c.scale)
	// Invert falls back to the identity when the forward transform is
	// singular (zero-area frame or content), so the event still lands
	// with untransformed coordinates instead of being dropped.
	p := m.Invert().TransformPoint(c.point)
	switch c.typ {
	case cmdPointerMove:
		e.sm.PointerMove(p)
	case cmdPointerDown:
		e.sm.PointerDown(p)
	case cmdPointerUp:
		e.sm.PointerUp(p)
	case cmdPointerExit:
		e.sm.PointerExit(p)
	}
}
