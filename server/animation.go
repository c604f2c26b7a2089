package server

import (
	"fmt"

	"github.com/gogpu/motion/engine"
)

// CreateDefaultAnimation instantiates the artboard's first linear
// animation. Produces AnimationCreated or AnimationError.
func (s *Server) CreateDefaultAnimation(requestID uint64, artboard Handle) {
	s.enqueue(Command{typ: cmdCreateDefaultAnimation, requestID: requestID, handle: artboard})
}

// CreateAnimationByIndex instantiates the animation at the given index in
// artboard order. Produces AnimationCreated or AnimationError.
func (s *Server) CreateAnimationByIndex(requestID uint64, artboard Handle, index int) {
	s.enqueue(Command{typ: cmdCreateAnimationByIndex, requestID: requestID, handle: artboard, index: index})
}

// CreateAnimationByName instantiates the named animation.
// Produces AnimationCreated or AnimationError.
func (s *Server) CreateAnimationByName(requestID uint64, artboard Handle, name string) {
	s.enqueue(Command{typ: cmdCreateAnimationByName, requestID: requestID, handle: artboard, name: name})
}

// DeleteAnimation releases an animation instance.
// Produces AnimationDeleted or AnimationError.
func (s *Server) DeleteAnimation(requestID uint64, animation Handle) {
	s.enqueue(Command{typ: cmdDeleteAnimation, requestID: requestID, handle: animation})
}

// AdvanceAnimation steps a linear animation by dt seconds and applies it
// to its artboard. An invalid handle is ignored without a message,
// matching AdvanceStateMachine. Produces AnimationFinished on the advance
// where the animation first reports no further frames.
func (s *Server) AdvanceAnimation(animation Handle, dt float64) {
	s.enqueue(Command{typ: cmdAdvanceAnimation, handle: animation, dt: dt})
}

// createAnimation instantiates an animation on the server goroutine.
// Shared by the async handlers and the synchronous variants. byName
// selects the name lookup; otherwise index is used (0 for the default).
func (s *Server) createAnimation(artboard Handle, index int, name string, byName bool) (Handle, error) {
	a, err := s.lookupArtboard(artboard)
	if err != nil {
		return NilHandle, err
	}
	var anim engine.Animation
	if byName {
		anim, err = a.AnimationNamed(name)
	} else {
		anim, err = a.AnimationAt(index)
	}
	if err != nil {
		return NilHandle, err
	}
	h := s.handles.Allocate()
	s.animations[h] = &animationEntry{anim: anim}
	return h, nil
}

func (s *Server) applyCreateAnimation(c Command) {
	h, err := s.createAnimation(c.handle, c.index, c.name, c.typ == cmdCreateAnimationByName)
	if err != nil {
		s.post(Message{Type: MsgAnimationError, RequestID: c.requestID, Err: err.Error()})
		return
	}
	s.post(Message{Type: MsgAnimationCreated, RequestID: c.requestID, Handle: h})
}

func (s *Server) applyDeleteAnimation(c Command) {
	a, ok := s.animations[c.handle]
	if !ok {
		s.post(Message{Type: MsgAnimationError, RequestID: c.requestID, Err: fmt.Sprintf("invalid animation handle %d", c.handle)})
		return
	}
	delete(s.animations, c.handle)
	a.anim.Close()
	s.post(Message{Type: MsgAnimationDeleted, RequestID: c.requestID, Handle: c.handle})
}

func (s *Server) applyAdvanceAnimation(c Command) {
	a, ok := s.animations[c.handle]
	if !ok {
		return
	}
	finished := !a.anim.Advance(c.dt)
	if finished && !a.finished {
		s.post(Message{Type: MsgAnimationFinished, Handle: c.handle})
	}
	a.finished = finished
}
