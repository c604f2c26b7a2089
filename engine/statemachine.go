package engine

import "github.com/gogpu/motion"

// InputType identifies the type of a state-machine input.
type InputType uint8

const (
	InputNumber InputType = iota
	InputBoolean
	InputTrigger
)

// String returns a human-readable name for the input type.
func (t InputType) String() string {
	switch t {
	case InputNumber:
		return "Number"
	case InputBoolean:
		return "Boolean"
	case InputTrigger:
		return "Trigger"
	}
	return "Unknown"
}

// Input is a typed state-machine input. Concrete values additionally
// implement NumberInput, BooleanInput, or TriggerInput according to Type.
type Input interface {
	Name() string
	Type() InputType
}

// NumberInput is a numeric state-machine input.
type NumberInput interface {
	Input
	Value() float64
	SetValue(v float64)
}

// BooleanInput is a boolean state-machine input.
type BooleanInput interface {
	Input
	Value() bool
	SetValue(v bool)
}

// TriggerInput is a fire-once state-machine input.
type TriggerInput interface {
	Input
	Fire()
}

// StateMachine drives an artboard's animated appearance.
//
// Pointer coordinates passed to the Pointer* methods are in artboard space;
// the motion server performs the surface-to-artboard transform before
// delivery.
type StateMachine interface {
	// Name returns the state machine's name.
	Name() string

	// Artboard returns the artboard this state machine drives.
	Artboard() Artboard

	// Advance steps the state machine by dt seconds and reports whether
	// it has settled (nothing left to animate until new input arrives).
	Advance(dt float64) (settled bool)

	// Bind attaches a view-model instance as the state machine's data
	// context. A state machine is bound to at most one instance; binding
	// again replaces the previous one.
	Bind(vmi ViewModelInstance) error

	// Input looks up an input by name.
	Input(name string) (Input, bool)

	PointerMove(p motion.Point)
	PointerDown(p motion.Point)
	PointerUp(p motion.Point)
	PointerExit(p motion.Point)

	// Close releases the state machine instance.
	Close()
}
