package server

import (
	"github.com/gogpu/motion"
	"github.com/gogpu/motion/engine"
)

// commandType tags the operation a Command describes.
type commandType uint8

const (
	cmdNone commandType = iota

	// file
	cmdLoadFile
	cmdDeleteFile
	cmdGetArtboardNames
	cmdGetViewModelNames
	cmdGetViewModelInstanceNames
	cmdGetViewModelProperties
	cmdGetEnums

	// artboard
	cmdCreateDefaultArtboard
	cmdCreateArtboardByName
	cmdDeleteArtboard
	cmdGetStateMachineNames
	cmdGetAnimationNames
	cmdGetDefaultViewModel
	cmdResizeArtboard
	cmdResetArtboardSize

	// state machine
	cmdCreateDefaultStateMachine
	cmdCreateStateMachineByName
	cmdDeleteStateMachine
	cmdAdvanceStateMachine
	cmdBindViewModelInstance
	cmdSetNumberInput
	cmdGetNumberInput
	cmdSetBooleanInput
	cmdGetBooleanInput
	cmdFireTrigger

	// pointer
	cmdPointerMove
	cmdPointerDown
	cmdPointerUp
	cmdPointerExit

	// animation
	cmdCreateDefaultAnimation
	cmdCreateAnimationByIndex
	cmdCreateAnimationByName
	cmdDeleteAnimation
	cmdAdvanceAnimation

	// view-model instance
	cmdCreateBlankVMI
	cmdCreateDefaultVMI
	cmdCreateNamedVMI
	cmdCreateArtboardVMI
	cmdDeleteVMI
	cmdGetProperty
	cmdSetProperty
	cmdFireProperty
	cmdGetListSize
	cmdGetListItem
	cmdListAppend
	cmdListInsert
	cmdListRemove
	cmdListSwap
	cmdSetInstanceProperty
	cmdGetInstanceProperty
	cmdSetImageProperty
	cmdSubscribeProperty
	cmdUnsubscribeProperty

	// assets
	cmdDecodeImage
	cmdDecodeAudio
	cmdDecodeFont
	cmdDeleteImage
	cmdDeleteAudio
	cmdDeleteFont
	cmdRegisterImage
	cmdRegisterAudio
	cmdRegisterFont
	cmdUnregisterImage
	cmdUnregisterAudio
	cmdUnregisterFont

	// render target / draw
	cmdDeleteRenderTarget
	cmdDraw
	cmdDrawBatch

	// one-shot closure for synchronous operations
	cmdRunOnce
)

// DrawEntry names one artboard to draw, how to fit it, and the caller's
// correlation key for the resulting DrawComplete/DrawError message.
// StateMachine may be NilHandle for a static artboard.
type DrawEntry struct {
	Artboard     Handle
	StateMachine Handle
	Fit          motion.Fit
	Alignment    motion.Alignment
	ScaleFactor  float64
	DrawKey      uint64
}

// Command is a self-contained description of one requested operation.
// Commands are values; once enqueued they are never mutated. Only the
// fields meaningful for typ are set.
type Command struct {
	typ       commandType
	requestID uint64
	handle    Handle // primary resource
	owner     Handle // secondary resource (file for creates, target for draws)
	name      string
	path      string
	str       string
	data      []byte
	num       float64
	boolean   bool
	color     uint32
	index     int
	index2    int
	dt        float64
	width     float64
	height    float64
	scale     float64
	fit       motion.Fit
	align     motion.Alignment
	point     motion.Point
	propType  engine.PropertyType
	entries   []DrawEntry
	run       func()
}
