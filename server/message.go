package server

import "github.com/gogpu/motion/engine"

// MessageType tags the meaning of a Message.
type MessageType uint8

const (
	// file
	MsgFileLoaded MessageType = iota
	MsgFileDeleted
	MsgFileError
	MsgArtboardsListed
	MsgViewModelsListed
	MsgViewModelInstanceNamesListed
	MsgViewModelPropertiesListed
	MsgEnumsListed

	// artboard
	MsgArtboardCreated
	MsgArtboardDeleted
	MsgArtboardError
	MsgStateMachinesListed
	MsgAnimationsListed
	MsgDefaultViewModel

	// state machine
	MsgStateMachineCreated
	MsgStateMachineDeleted
	MsgStateMachineError
	MsgStateMachineSettled
	MsgInputValue
	MsgInputError

	// animation
	MsgAnimationCreated
	MsgAnimationDeleted
	MsgAnimationError
	MsgAnimationFinished

	// view-model instance
	MsgViewModelInstanceCreated
	MsgViewModelInstanceDeleted
	MsgViewModelInstanceError
	MsgPropertyValue
	MsgPropertyError
	MsgListSize
	MsgPropertyUpdated
	MsgTriggerFired

	// assets
	MsgImageDecoded
	MsgAudioDecoded
	MsgFontDecoded
	MsgImageDeleted
	MsgAudioDeleted
	MsgFontDeleted
	MsgAssetError

	// render target / draw
	MsgRenderTargetDeleted
	MsgDrawComplete
	MsgDrawError
)

// PropertyValue carries one typed view-model property value. Type selects
// which field is meaningful; trigger values carry none.
type PropertyValue struct {
	Type      engine.PropertyType
	Number    float64
	Str       string
	Bool      bool
	Color     uint32
	EnumValue string
}

// Message is a result, an error, or an unsolicited event produced by the
// server goroutine. RequestID echoes the triggering command's request ID;
// unsolicited messages (PropertyUpdated, TriggerFired, settle events with
// no pending request) carry RequestID 0 and are keyed by Handle and Path
// instead.
type Message struct {
	Type      MessageType
	RequestID uint64
	Handle    Handle
	Name      string
	Names     []string
	Props     []engine.Property
	Enums     []engine.Enum
	Value     PropertyValue
	InputType engine.InputType
	Num       float64
	Bool      bool
	Size      int
	Path      string
	DrawKey   uint64
	Err       string
}
