package server

import (
	"github.com/gogpu/motion"
	"github.com/gogpu/motion/engine"
)

// Listener receives drained messages as typed callbacks. Implementations
// usually embed NopListener and override the few methods they care about.
type Listener interface {
	OnFileLoaded(requestID uint64, file Handle)
	OnFileDeleted(requestID uint64, file Handle)
	OnFileError(requestID uint64, err string)
	OnArtboardsListed(requestID uint64, file Handle, names []string)
	OnViewModelsListed(requestID uint64, file Handle, names []string)
	OnViewModelInstanceNamesListed(requestID uint64, file Handle, viewModel string, names []string)
	OnViewModelPropertiesListed(requestID uint64, file Handle, viewModel string, props []engine.Property)
	OnEnumsListed(requestID uint64, file Handle, enums []engine.Enum)

	OnArtboardCreated(requestID uint64, artboard Handle)
	OnArtboardDeleted(requestID uint64, artboard Handle)
	OnArtboardError(requestID uint64, err string)
	OnStateMachinesListed(requestID uint64, artboard Handle, names []string)
	OnAnimationsListed(requestID uint64, artboard Handle, names []string)
	OnDefaultViewModel(requestID uint64, artboard Handle, name string)

	OnStateMachineCreated(requestID uint64, sm Handle)
	OnStateMachineDeleted(requestID uint64, sm Handle)
	OnStateMachineError(requestID uint64, err string)
	OnStateMachineSettled(sm Handle)
	OnInputValue(requestID uint64, sm Handle, name string, t engine.InputType, num float64, b bool)
	OnInputError(requestID uint64, err string)

	OnAnimationCreated(requestID uint64, animation Handle)
	OnAnimationDeleted(requestID uint64, animation Handle)
	OnAnimationError(requestID uint64, err string)
	OnAnimationFinished(animation Handle)

	OnViewModelInstanceCreated(requestID uint64, vmi Handle, name string)
	OnViewModelInstanceDeleted(requestID uint64, vmi Handle)
	OnViewModelInstanceError(requestID uint64, err string)
	OnPropertyValue(requestID uint64, vmi Handle, path string, value PropertyValue)
	OnPropertyError(requestID uint64, vmi Handle, path string, err string)
	OnListSize(requestID uint64, vmi Handle, path string, size int)
	OnPropertyUpdated(vmi Handle, path string, value PropertyValue)
	OnTriggerFired(vmi Handle, path string)

	OnImageDecoded(requestID uint64, image Handle)
	OnAudioDecoded(requestID uint64, audio Handle)
	OnFontDecoded(requestID uint64, font Handle)
	OnImageDeleted(requestID uint64, image Handle)
	OnAudioDeleted(requestID uint64, audio Handle)
	OnFontDeleted(requestID uint64, font Handle)
	OnAssetError(requestID uint64, err string)

	OnRenderTargetDeleted(requestID uint64, target Handle)
	OnDrawComplete(requestID uint64, target Handle, drawKey uint64)
	OnDrawError(requestID uint64, target Handle, drawKey uint64, err string)
}

// Dispatch drains the server's pending messages and delivers each to the
// matching listener callback, in production order. Call it from the
// goroutine that owns the listener, typically once per frame.
//
// A panic raised by a callback is recovered and logged; delivery of the
// remaining messages in the batch continues.
func (s *Server) Dispatch(l Listener) {
	for _, m := range s.DrainMessages() {
		dispatchOne(l, m)
	}
}

func dispatchOne(l Listener, m Message) {
	defer func() {
		if r := recover(); r != nil {
			motion.Logger().Error("motion server: listener callback panicked",
				"type", m.Type, "panic", r)
		}
	}()
	switch m.Type {
	case MsgFileLoaded:
		l.OnFileLoaded(m.RequestID, m.Handle)
	case MsgFileDeleted:
		l.OnFileDeleted(m.RequestID, m.Handle)
	case MsgFileError:
		l.OnFileError(m.RequestID, m.Err)
	case MsgArtboardsListed:
		l.OnArtboardsListed(m.RequestID, m.Handle, m.Names)
	case MsgViewModelsListed:
		l.OnViewModelsListed(m.RequestID, m.Handle, m.Names)
	case MsgViewModelInstanceNamesListed:
		l.OnViewModelInstanceNamesListed(m.RequestID, m.Handle, m.Name, m.Names)
	case MsgViewModelPropertiesListed:
		l.OnViewModelPropertiesListed(m.RequestID, m.Handle, m.Name, m.Props)
	case MsgEnumsListed:
		l.OnEnumsListed(m.RequestID, m.Handle, m.Enums)

	case MsgArtboardCreated:
		l.OnArtboardCreated(m.RequestID, m.Handle)
	case MsgArtboardDeleted:
		l.OnArtboardDeleted(m.RequestID, m.Handle)
	case MsgArtboardError:
		l.OnArtboardError(m.RequestID, m.Err)
	case MsgStateMachinesListed:
		l.OnStateMachinesListed(m.RequestID, m.Handle, m.Names)
	case MsgAnimationsListed:
		l.OnAnimationsListed(m.RequestID, m.Handle, m.Names)
	case MsgDefaultViewModel:
		l.OnDefaultViewModel(m.RequestID, m.Handle, m.Name)

	case MsgStateMachineCreated:
		l.OnStateMachineCreated(m.RequestID, m.Handle)
	case MsgStateMachineDeleted:
		l.OnStateMachineDeleted(m.RequestID, m.Handle)
	case MsgStateMachineError:
		l.OnStateMachineError(m.RequestID, m.Err)
	case MsgStateMachineSettled:
		l.OnStateMachineSettled(m.Handle)
	case MsgInputValue:
		l.OnInputValue(m.RequestID, m.Handle, m.Name, m.InputType, m.Num, m.Bool)
	case MsgInputError:
		l.OnInputError(m.RequestID, m.Err)

	case MsgAnimationCreated:
		l.OnAnimationCreated(m.RequestID, m.Handle)
	case MsgAnimationDeleted:
		l.OnAnimationDeleted(m.RequestID, m.Handle)
	case MsgAnimationError:
		l.OnAnimationError(m.RequestID, m.Err)
	case MsgAnimationFinished:
		l.OnAnimationFinished(m.Handle)

	case MsgViewModelInstanceCreated:
		l.OnViewModelInstanceCreated(m.RequestID, m.Handle, m.Name)
	case MsgViewModelInstanceDeleted:
		l.OnViewModelInstanceDeleted(m.RequestID, m.Handle)
	case MsgViewModelInstanceError:
		l.OnViewModelInstanceError(m.RequestID, m.Err)
	case MsgPropertyValue:
		l.OnPropertyValue(m.RequestID, m.Handle, m.Path, m.Value)
	case MsgPropertyError:
		l.OnPropertyError(m.RequestID, m.Handle, m.Path, m.Err)
	case MsgListSize:
		l.OnListSize(m.RequestID, m.Handle, m.Path, m.Size)
	case MsgPropertyUpdated:
		l.OnPropertyUpdated(m.Handle, m.Path, m.Value)
	case MsgTriggerFired:
		l.OnTriggerFired(m.Handle, m.Path)

	case MsgImageDecoded:
		l.OnImageDecoded(m.RequestID, m.Handle)
	case MsgAudioDecoded:
		l.OnAudioDecoded(m.RequestID, m.Handle)
	case MsgFontDecoded:
		l.OnFontDecoded(m.RequestID, m.Handle)
	case MsgImageDeleted:
		l.OnImageDeleted(m.RequestID, m.Handle)
	case MsgAudioDeleted:
		l.OnAudioDeleted(m.RequestID, m.Handle)
	case MsgFontDeleted:
		l.OnFontDeleted(m.RequestID, m.Handle)
	case MsgAssetError:
		l.OnAssetError(m.RequestID, m.Err)

	case MsgRenderTargetDeleted:
		l.OnRenderTargetDeleted(m.RequestID, m.Handle)
	case MsgDrawComplete:
		l.OnDrawComplete(m.RequestID, m.Handle, m.DrawKey)
	case MsgDrawError:
		l.OnDrawError(m.RequestID, m.Handle, m.DrawKey, m.Err)
	}
}

// NopListener implements Listener with empty methods. Embed it to pick
// out just the callbacks a client needs.
type NopListener struct{}

var _ Listener = NopListener{}

func (NopListener) OnFileLoaded(uint64, Handle)                                  {}
func (NopListener) OnFileDeleted(uint64, Handle)                                 {}
func (NopListener) OnFileError(uint64, string)                                   {}
func (NopListener) OnArtboardsListed(uint64, Handle, []string)                   {}
func (NopListener) OnViewModelsListed(uint64, Handle, []string)                  {}
func (NopListener) OnViewModelInstanceNamesListed(uint64, Handle, string, []string) {
}
func (NopListener) OnViewModelPropertiesListed(uint64, Handle, string, []engine.Property) {
}
func (NopListener) OnEnumsListed(uint64, Handle, []engine.Enum)                  {}
func (NopListener) OnArtboardCreated(uint64, Handle)                             {}
func (NopListener) OnArtboardDeleted(uint64, Handle)                             {}
func (NopListener) OnArtboardError(uint64, string)                               {}
func (NopListener) OnStateMachinesListed(uint64, Handle, []string)               {}
func (NopListener) OnAnimationsListed(uint64, Handle, []string)                  {}
func (NopListener) OnDefaultViewModel(uint64, Handle, string)                    {}
func (NopListener) OnStateMachineCreated(uint64, Handle)                         {}
func (NopListener) OnStateMachineDeleted(uint64, Handle)                         {}
func (NopListener) OnStateMachineError(uint64, string)                           {}
func (NopListener) OnStateMachineSettled(Handle)                                 {}
func (NopListener) OnInputValue(uint64, Handle, string, engine.InputType, float64, bool) {
}
func (NopListener) OnInputError(uint64, string)                                  {}
func (NopListener) OnAnimationCreated(uint64, Handle)                            {}
func (NopListener) OnAnimationDeleted(uint64, Handle)                            {}
func (NopListener) OnAnimationError(uint64, string)                              {}
func (NopListener) OnAnimationFinished(Handle)                                   {}
func (NopListener) OnViewModelInstanceCreated(uint64, Handle, string)            {}
func (NopListener) OnViewModelInstanceDeleted(uint64, Handle)                    {}
func (NopListener) OnViewModelInstanceError(uint64, string)                      {}
func (NopListener) OnPropertyValue(uint64, Handle, string, PropertyValue)        {}
func (NopListener) OnPropertyError(uint64, Handle, string, string)               {}
func (NopListener) OnListSize(uint64, Handle, string, int)                       {}
func (NopListener) OnPropertyUpdated(Handle, string, PropertyValue)              {}
func (NopListener) OnTriggerFired(Handle, string)                                {}
func (NopListener) OnImageDecoded(uint64, Handle)                                {}
func (NopListener) OnAudioDecoded(uint64, Handle)                                {}
func (NopListener) OnFontDecoded(uint64, Handle)                                 {}
func (NopListener) OnImageDeleted(uint64, Handle)                                {}
func (NopListener) OnAudioDeleted(uint64, Handle)                                {}
func (NopListener) OnFontDeleted(uint64, Handle)                                 {}
func (NopListener) OnAssetError(uint64, string)                                  {}
func (NopListener) OnRenderTargetDeleted(uint64, Handle)                         {}
func (NopListener) OnDrawComplete(uint64, Handle, uint64)                        {}
func (NopListener) OnDrawError(uint64, Handle, uint64, string)                   {}
