package server

import (
	"fmt"

	"github.com/gogpu/motion/engine"
)

// CreateDefaultStateMachine instantiates the artboard's default state
// machine. Produces StateMachineCreated or StateMachineError.
func (s *Server) CreateDefaultStateMachine(requestID uint64, artboard Handle) {
	s.enqueue(Command{typ: cmdCreateDefaultStateMachine, requestID: requestID, handle: artboard})
}

// CreateStateMachineByName instantiates the named state machine on an
// artboard. Produces StateMachineCreated or StateMachineError.
func (s *Server) CreateStateMachineByName(requestID uint64, artboard Handle, name string) {
	s.enqueue(Command{typ: cmdCreateStateMachineByName, requestID: requestID, handle: artboard, name: name})
}

// DeleteStateMachine releases a state machine instance.
// Produces StateMachineDeleted or StateMachineError.
func (s *Server) DeleteStateMachine(requestID uint64, sm Handle) {
	s.enqueue(Command{typ: cmdDeleteStateMachine, requestID: requestID, handle: sm})
}

// AdvanceStateMachine steps a state machine and its artboard by dt
// seconds. An invalid handle is ignored without a message; advance is
// fired every frame and a handle deleted mid-flight is routine. Produces
// StateMachineSettled on the advance where the machine first reports
// nothing left to animate; further settled advances stay quiet until the
// machine becomes active again.
func (s *Server) AdvanceStateMachine(sm Handle, dt float64) {
	s.enqueue(Command{typ: cmdAdvanceStateMachine, handle: sm, dt: dt})
}

// BindViewModelInstance attaches a view-model instance as the state
// machine's data context, replacing any previous binding.
// Produces StateMachineError on failure; success is silent.
func (s *Server) BindViewModelInstance(requestID uint64, sm, vmi Handle) {
	s.enqueue(Command{typ: cmdBindViewModelInstance, requestID: requestID, handle: sm, owner: vmi})
}

// SetNumberInput sets a numeric state-machine input. A dead handle is
// dropped without a message, like pointer events; an unknown name or a
// type mismatch produces InputError. Success is silent.
func (s *Server) SetNumberInput(requestID uint64, sm Handle, name string, value float64) {
	s.enqueue(Command{typ: cmdSetNumberInput, requestID: requestID, handle: sm, name: name, num: value})
}

// GetNumberInput reads a numeric state-machine input.
// Produces InputValue or InputError.
func (s *Server) GetNumberInput(requestID uint64, sm Handle, name string) {
	s.enqueue(Command{typ: cmdGetNumberInput, requestID: requestID, handle: sm, name: name})
}

// SetBooleanInput sets a boolean state-machine input. A dead handle is
// dropped without a message; an unknown name or a type mismatch produces
// InputError. Success is silent.
func (s *Server) SetBooleanInput(requestID uint64, sm Handle, name string, value bool) {
	s.enqueue(Command{typ: cmdSetBooleanInput, requestID: requestID, handle: sm, name: name, boolean: value})
}

// GetBooleanInput reads a boolean state-machine input.
// Produces InputValue or InputError.
func (s *Server) GetBooleanInput(requestID uint64, sm Handle, name string) {
	s.enqueue(Command{typ: cmdGetBooleanInput, requestID: requestID, handle: sm, name: name})
}

// FireTrigger fires a trigger state-machine input. A dead handle is
// dropped without a message; an unknown name or a type mismatch produces
// InputError. Success is silent.
func (s *Server) FireTrigger(requestID uint64, sm Handle, name string) {
	s.enqueue(Command{typ: cmdFireTrigger, requestID: requestID, handle: sm, name: name})
}

func (s *Server) applyCreateStateMachine(c Command) {
	e, ok := s.artboards[c.handle]
	if !ok {
		s.post(Message{Type: MsgStateMachineError, RequestID: c.requestID, Err: fmt.Sprintf("invalid artboard handle %d", c.handle)})
		return
	}
	var (
		sm  engine.StateMachine
		err error
	)
	if c.typ == cmdCreateDefaultStateMachine {
		sm, err = e.artboard.DefaultStateMachine()
	} else {
		sm, err = e.artboard.StateMachineNamed(c.name)
	}
	if err != nil {
		s.post(Message{Type: MsgStateMachineError, RequestID: c.requestID, Err: err.Error()})
		return
	}
	h := s.handles.Allocate()
	s.machines[h] = &stateMachineEntry{sm: sm, artboard: c.handle}
	s.post(Message{Type: MsgStateMachineCreated, RequestID: c.requestID, Handle: h})
}

func (s *Server) applyDeleteStateMachine(c Command) {
	e, ok := s.machines[c.handle]
	if !ok {
		s.post(Message{Type: MsgStateMachineError, RequestID: c.requestID, Err: fmt.Sprintf("invalid state machine handle %d", c.handle)})
		return
	}
	delete(s.machines, c.handle)
	e.sm.Close()
	s.post(Message{Type: MsgStateMachineDeleted, RequestID: c.requestID, Handle: c.handle})
}

func (s *Server) applyAdvanceStateMachine(c Command) {
	e, ok := s.machines[c.handle]
	if !ok {
		return
	}
	settled := e.sm.Advance(c.dt)
	// Advancing the owning artboard applies the machine's outputs to the
	// component tree so the next draw reflects this step.
	if ae, ok := s.artboards[e.artboard]; ok {
		ae.artboard.Advance(c.dt)
	}
	if settled && !e.settled {
		s.post(Message{Type: MsgStateMachineSettled, Handle: c.handle})
	}
	e.settled = settled
}

func (s *Server) applyBindViewModelInstance(c Command) {
	e, ok := s.machines[c.handle]
	if !ok {
		s.post(Message{Type: MsgStateMachineError, RequestID: c.requestID, Err: fmt.Sprintf("invalid state machine handle %d", c.handle)})
		return
	}
	vmi, ok := s.instances[c.owner]
	if !ok {
		s.post(Message{Type: MsgStateMachineError, RequestID: c.requestID, Err: fmt.Sprintf("invalid view model instance handle %d", c.owner)})
		return
	}
	if err := e.sm.Bind(vmi); err != nil {
		s.post(Message{Type: MsgStateMachineError, RequestID: c.requestID, Err: fmt.Sprintf("bind: %v", err)})
	}
}

func (s *Server) applyInput(c Command) {
	e, ok := s.machines[c.handle]
	if !ok {
		// A set or trigger fire on a dead handle is dropped like a
		// pointer event; a handle deleted mid-flight is routine. Reads
		// have a caller waiting and report the miss.
		if c.typ == cmdGetNumberInput || c.typ == cmdGetBooleanInput {
			s.post(Message{Type: MsgInputError, RequestID: c.requestID, Err: fmt.Sprintf("invalid state machine handle %d", c.handle)})
		}
		return
	}
	in, ok := e.sm.Input(c.name)
	if !ok {
		s.post(Message{Type: MsgInputError, RequestID: c.requestID, Err: fmt.Sprintf("no input named %q", c.name)})
		return
	}
	mismatch := func(want engine.InputType) {
		s.post(Message{
			Type:      MsgInputError,
			RequestID: c.requestID,
			Err:       fmt.Sprintf("input %q is %s, not %s", c.name, in.Type(), want),
		})
	}
	switch c.typ {
	case cmdSetNumberInput:
		n, ok := in.(engine.NumberInput)
		if !ok {
			mismatch(engine.InputNumber)
			return
		}
		n.SetValue(c.num)
	case cmdGetNumberInput:
		n, ok := in.(engine.NumberInput)
		if !ok {
			mismatch(engine.InputNumber)
			return
		}
		s.post(Message{
			Type:      MsgInputValue,
			RequestID: c.requestID,
			Handle:    c.handle,
			Name:      c.name,
			InputType: engine.InputNumber,
			Num:       n.Value(),
		})
	case cmdSetBooleanInput:
		b, ok := in.(engine.BooleanInput)
		if !ok {
			mismatch(engine.InputBoolean)
			return
		}
		b.SetValue(c.boolean)
	case cmdGetBooleanInput:
		b, ok := in.(engine.BooleanInput)
		if !ok {
			mismatch(engine.InputBoolean)
			return
		}
		s.post(Message{
			Type:      MsgInputValue,
			RequestID: c.requestID,
			Handle:    c.handle,
			Name:      c.name,
			InputType: engine.InputBoolean,
			Bool:      b.Value(),
		})
	case cmdFireTrigger:
		t, ok := in.(engine.TriggerInput)
		if !ok {
			mismatch(engine.InputTrigger)
			return
		}
		t.Fire()
	}
}
