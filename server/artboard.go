package server

import (
	"errors"
	"fmt"

	"github.com/gogpu/motion/engine"
)

// CreateDefaultArtboard instantiates the file's default artboard.
// Produces ArtboardCreated or ArtboardError.
func (s *Server) CreateDefaultArtboard(requestID uint64, file Handle) {
	s.enqueue(Command{typ: cmdCreateDefaultArtboard, requestID: requestID, handle: file})
}

// CreateArtboardByName instantiates the named artboard from a file.
// Produces ArtboardCreated or ArtboardError.
func (s *Server) CreateArtboardByName(requestID uint64, file Handle, name string) {
	s.enqueue(Command{typ: cmdCreateArtboardByName, requestID: requestID, handle: file, name: name})
}

// DeleteArtboard releases an artboard instance. State machines and
// animations created from it must be deleted independently.
// Produces ArtboardDeleted or ArtboardError.
func (s *Server) DeleteArtboard(requestID uint64, artboard Handle) {
	s.enqueue(Command{typ: cmdDeleteArtboard, requestID: requestID, handle: artboard})
}

// GetStateMachineNames lists an artboard's state machine names.
// Produces StateMachinesListed or ArtboardError.
func (s *Server) GetStateMachineNames(requestID uint64, artboard Handle) {
	s.enqueue(Command{typ: cmdGetStateMachineNames, requestID: requestID, handle: artboard})
}

// GetAnimationNames lists an artboard's linear animation names.
// Produces AnimationsListed or ArtboardError.
func (s *Server) GetAnimationNames(requestID uint64, artboard Handle) {
	s.enqueue(Command{typ: cmdGetAnimationNames, requestID: requestID, handle: artboard})
}

// GetDefaultViewModel reports the name of the view model the artboard
// binds by default. Produces DefaultViewModel or ArtboardError.
func (s *Server) GetDefaultViewModel(requestID uint64, artboard Handle) {
	s.enqueue(Command{typ: cmdGetDefaultViewModel, requestID: requestID, handle: artboard})
}

// ResizeArtboard overrides the artboard's authored size. An invalid
// handle is ignored without producing a message; resize is routinely
// fired per window event and a stale handle is not an error worth
// reporting.
func (s *Server) ResizeArtboard(artboard Handle, width, height, scaleFactor float64) {
	s.enqueue(Command{typ: cmdResizeArtboard, handle: artboard, width: width, height: height, scale: scaleFactor})
}

// ResetArtboardSize restores the artboard's authored size. Invalid
// handles are ignored, matching ResizeArtboard.
func (s *Server) ResetArtboardSize(artboard Handle) {
	s.enqueue(Command{typ: cmdResetArtboardSize, handle: artboard})
}

// createArtboard instantiates an artboard on the server goroutine and
// registers it in the table. Shared by the async handler and the
// synchronous variants.
func (s *Server) createArtboard(file Handle, name string, useDefault bool) (Handle, error) {
	f, ok := s.files[file]
	if !ok {
		return NilHandle, fmt.Errorf("%w: file %d", ErrInvalidHandle, file)
	}
	var (
		a   engine.Artboard
		err error
	)
	if useDefault {
		a, err = f.DefaultArtboard()
	} else {
		a, err = f.ArtboardNamed(name)
	}
	if err != nil {
		return NilHandle, err
	}
	h := s.handles.Allocate()
	s.artboards[h] = &artboardEntry{artboard: a, file: file}
	return h, nil
}

func (s *Server) applyCreateArtboard(c Command) {
	h, err := s.createArtboard(c.handle, c.name, c.typ == cmdCreateDefaultArtboard)
	if err != nil {
		s.post(Message{Type: MsgArtboardError, RequestID: c.requestID, Err: err.Error()})
		return
	}
	s.post(Message{Type: MsgArtboardCreated, RequestID: c.requestID, Handle: h})
}

func (s *Server) applyDeleteArtboard(c Command) {
	e, ok := s.artboards[c.handle]
	if !ok {
		s.post(Message{Type: MsgArtboardError, RequestID: c.requestID, Err: fmt.Sprintf("invalid artboard handle %d", c.handle)})
		return
	}
	delete(s.artboards, c.handle)
	e.artboard.Close()
	s.post(Message{Type: MsgArtboardDeleted, RequestID: c.requestID, Handle: c.handle})
}

// lookupArtboard resolves an artboard handle or returns an ErrInvalidHandle
// wrapped error describing it.
func (s *Server) lookupArtboard(h Handle) (engine.Artboard, error) {
	e, ok := s.artboards[h]
	if !ok {
		return nil, fmt.Errorf("%w: artboard %d", ErrInvalidHandle, h)
	}
	return e.artboard, nil
}

func (s *Server) applyGetStateMachineNames(c Command) {
	a, err := s.lookupArtboard(c.handle)
	if err != nil {
		s.post(Message{Type: MsgArtboardError, RequestID: c.requestID, Err: err.Error()})
		return
	}
	s.post(Message{Type: MsgStateMachinesListed, RequestID: c.requestID, Handle: c.handle, Names: a.StateMachineNames()})
}

func (s *Server) applyGetAnimationNames(c Command) {
	a, err := s.lookupArtboard(c.handle)
	if err != nil {
		s.post(Message{Type: MsgArtboardError, RequestID: c.requestID, Err: err.Error()})
		return
	}
	s.post(Message{Type: MsgAnimationsListed, RequestID: c.requestID, Handle: c.handle, Names: a.AnimationNames()})
}

func (s *Server) applyGetDefaultViewModel(c Command) {
	e, ok := s.artboards[c.handle]
	if !ok {
		s.post(Message{Type: MsgArtboardError, RequestID: c.requestID, Err: fmt.Sprintf("invalid artboard handle %d", c.handle)})
		return
	}
	f, ok := s.files[e.file]
	if !ok {
		s.post(Message{Type: MsgArtboardError, RequestID: c.requestID, Err: fmt.Sprintf("artboard %d: owning file deleted", c.handle)})
		return
	}
	vm, err := f.DefaultViewModel(e.artboard)
	if err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			s.post(Message{Type: MsgDefaultViewModel, RequestID: c.requestID, Handle: c.handle, Name: ""})
			return
		}
		s.post(Message{Type: MsgArtboardError, RequestID: c.requestID, Err: err.Error()})
		return
	}
	s.post(Message{Type: MsgDefaultViewModel, RequestID: c.requestID, Handle: c.handle, Name: vm.Name()})
}

func (s *Server) applyResizeArtboard(c Command) {
	a, err := s.lookupArtboard(c.handle)
	if err != nil {
		return
	}
	a.Resize(c.width, c.height, c.scale)
}

func (s *Server) applyResetArtboardSize(c Command) {
	a, err := s.lookupArtboard(c.handle)
	if err != nil {
		return
	}
	a.ResetSize()
}
