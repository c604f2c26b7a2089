package server

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/engine"
	"github.com/gogpu/motion/render"
)

// Sentinel errors used in *Error message strings.
var (
	// ErrInvalidHandle reports a handle with no live table entry.
	ErrInvalidHandle = errors.New("motion/server: invalid handle")

	// ErrServerStopped reports an operation against a stopped server.
	ErrServerStopped = errors.New("motion/server: server stopped")
)

// artboardEntry owns one artboard instance and remembers the file it came
// from. The file reference is a handle, not a pointer: deletion order is
// caller-controlled and arbitrary.
type artboardEntry struct {
	artboard engine.Artboard
	file     Handle
}

// stateMachineEntry owns one state machine instance and the handle of the
// artboard it drives, resolved through the artboard table on each use.
// settled tracks the last advance report so StateMachineSettled is posted
// once per transition, not once per advance.
type stateMachineEntry struct {
	sm       engine.StateMachine
	artboard Handle
	settled  bool
}

// animationEntry owns one animation instance. finished edge-triggers
// AnimationFinished the same way stateMachineEntry.settled does.
type animationEntry struct {
	anim     engine.Animation
	finished bool
}

// subKey identifies one property subscription.
type subKey struct {
	handle Handle
	path   string
	typ    engine.PropertyType
}

// Server owns the command queue consumer loop on one dedicated goroutine,
// applies commands to its resource tables and the animation engine, and
// produces messages.
//
// All table mutation and every engine call happens on the server
// goroutine. Callers interact only through the exported methods, all of
// which are safe from any goroutine.
type Server struct {
	eng engine.Engine
	rc  *render.Context

	commands *commandQueue
	messages *messageQueue
	handles  handleAllocator

	// Resource tables. Confined to the server goroutine.
	files        map[Handle]engine.File
	artboards    map[Handle]*artboardEntry
	machines     map[Handle]*stateMachineEntry
	animations   map[Handle]*animationEntry
	instances    map[Handle]engine.ViewModelInstance
	images       map[Handle]engine.ImageAsset
	audio        map[Handle]engine.AudioAsset
	fonts        map[Handle]engine.FontAsset
	targets      map[Handle]render.RenderTarget
	subs         map[subKey]struct{}
	imagesByName map[string]Handle
	audioByName  map[string]Handle
	fontsByName  map[string]Handle

	started atomic.Bool
	wg      sync.WaitGroup
}

// New creates a server for the given engine and render context.
// A nil context is replaced with a CPU-only one.
//
// The server does not process commands until Start is called.
func New(eng engine.Engine, rc *render.Context) *Server {
	if rc == nil {
		rc = render.NewContext(nil)
	}
	return &Server{
		eng:          eng,
		rc:           rc,
		commands:     newCommandQueue(),
		messages:     &messageQueue{},
		files:        make(map[Handle]engine.File),
		artboards:    make(map[Handle]*artboardEntry),
		machines:     make(map[Handle]*stateMachineEntry),
		animations:   make(map[Handle]*animationEntry),
		instances:    make(map[Handle]engine.ViewModelInstance),
		images:       make(map[Handle]engine.ImageAsset),
		audio:        make(map[Handle]engine.AudioAsset),
		fonts:        make(map[Handle]engine.FontAsset),
		targets:      make(map[Handle]render.RenderTarget),
		subs:         make(map[subKey]struct{}),
		imagesByName: make(map[string]Handle),
		audioByName:  make(map[string]Handle),
		fontsByName:  make(map[string]Handle),
	}
}

// Start launches the server goroutine. Calling Start more than once has
// no effect.
func (s *Server) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run()
	}()
}

// Stop closes the command queue and waits for the server goroutine to
// drain everything already enqueued and release all resources. Commands
// submitted after Stop are dropped; synchronous calls return the sentinel
// handle 0.
func (s *Server) Stop() {
	s.commands.close()
	if s.started.Load() {
		s.wg.Wait()
	}
}

// DrainMessages returns the messages accumulated since the previous
// drain, in production order. It never blocks and may be called from any
// goroutine.
func (s *Server) DrainMessages() []Message {
	return s.messages.drain()
}

// run is the server loop: pop, dispatch, repeat until the queue is closed
// and empty.
func (s *Server) run() {
	log := motion.Logger()
	log.Info("motion server started")
	for {
		cmd, ok := s.commands.pop()
		if !ok {
			break
		}
		s.apply(cmd)
	}
	s.releaseAll()
	log.Info("motion server stopped")
}

// apply dispatches one command to its handler.
func (s *Server) apply(c Command) {
	switch c.typ {
	case cmdRunOnce:
		c.run()

	case cmdLoadFile:
		s.applyLoadFile(c)
	case cmdDeleteFile:
		s.applyDeleteFile(c)
	case cmdGetArtboardNames:
		s.applyGetArtboardNames(c)
	case cmdGetViewModelNames:
		s.applyGetViewModelNames(c)
	case cmdGetViewModelInstanceNames:
		s.applyGetViewModelInstanceNames(c)
	case cmdGetViewModelProperties:
		s.applyGetViewModelProperties(c)
	case cmdGetEnums:
		s.applyGetEnums(c)

	case cmdCreateDefaultArtboard, cmdCreateArtboardByName:
		s.applyCreateArtboard(c)
	case cmdDeleteArtboard:
		s.applyDeleteArtboard(c)
	case cmdGetStateMachineNames:
		s.applyGetStateMachineNames(c)
	case cmdGetAnimationNames:
		s.applyGetAnimationNames(c)
	case cmdGetDefaultViewModel:
		s.applyGetDefaultViewModel(c)
	case cmdResizeArtboard:
		s.applyResizeArtboard(c)
	case cmdResetArtboardSize:
		s.applyResetArtboardSize(c)

	case cmdCreateDefaultStateMachine, cmdCreateStateMachineByName:
		s.applyCreateStateMachine(c)
	case cmdDeleteStateMachine:
		s.applyDeleteStateMachine(c)
	case cmdAdvanceStateMachine:
		s.applyAdvanceStateMachine(c)
	case cmdBindViewModelInstance:
		s.applyBindViewModelInstance(c)
	case cmdSetNumberInput, cmdGetNumberInput,
		cmdSetBooleanInput, cmdGetBooleanInput, cmdFireTrigger:
		s.applyInput(c)

	case cmdPointerMove, cmdPointerDown, cmdPointerUp, cmdPointerExit:
		s.applyPointerEvent(c)

	case cmdCreateDefaultAnimation, cmdCreateAnimationByIndex, cmdCreateAnimationByName:
		s.applyCreateAnimation(c)
	case cmdDeleteAnimation:
		s.applyDeleteAnimation(c)
	case cmdAdvanceAnimation:
		s.applyAdvanceAnimation(c)

	case cmdCreateBlankVMI, cmdCreateDefaultVMI, cmdCreateNamedVMI, cmdCreateArtboardVMI:
		s.applyCreateVMI(c)
	case cmdDeleteVMI:
		s.applyDeleteVMI(c)
	case cmdGetProperty:
		s.applyGetProperty(c)
	case cmdSetProperty:
		s.applySetProperty(c)
	case cmdFireProperty:
		s.applyFireProperty(c)
	case cmdGetListSize, cmdGetListItem, cmdListAppend,
		cmdListInsert, cmdListRemove, cmdListSwap:
		s.applyListOp(c)
	case cmdGetInstanceProperty, cmdSetInstanceProperty:
		s.applyInstanceProperty(c)
	case cmdSetImageProperty:
		s.applySetImageProperty(c)
	case cmdSubscribeProperty, cmdUnsubscribeProperty:
		s.applySubscription(c)

	case cmdDecodeImage, cmdDecodeAudio, cmdDecodeFont:
		s.applyDecodeAsset(c)
	case cmdDeleteImage, cmdDeleteAudio, cmdDeleteFont:
		s.applyDeleteAsset(c)
	case cmdRegisterImage, cmdRegisterAudio, cmdRegisterFont:
		s.applyRegisterAsset(c)
	case cmdUnregisterImage, cmdUnregisterAudio, cmdUnregisterFont:
		s.applyUnregisterAsset(c)

	case cmdDeleteRenderTarget:
		s.applyDeleteRenderTarget(c)
	case cmdDraw:
		s.applyDraw(c)
	case cmdDrawBatch:
		s.applyDrawBatch(c)

	default:
		motion.Logger().Warn("motion server: unknown command", "type", c.typ)
	}
}

// enqueue pushes a command, logging at debug when the server is stopped
// and the command is dropped.
func (s *Server) enqueue(c Command) {
	if !s.commands.push(c) {
		motion.Logger().Debug("motion server: command dropped after stop", "type", c.typ)
	}
}

// post publishes a message for the next drain.
func (s *Server) post(m Message) {
	s.messages.push(m)
}

// releaseAll destroys every remaining resource. Runs on the server
// goroutine after the loop exits, so no handler can observe a
// half-destroyed resource.
func (s *Server) releaseAll() {
	for h, e := range s.machines {
		e.sm.Close()
		delete(s.machines, h)
	}
	for h, a := range s.animations {
		a.anim.Close()
		delete(s.animations, h)
	}
	for h, v := range s.instances {
		v.Close()
		delete(s.instances, h)
	}
	for h, e := range s.artboards {
		e.artboard.Close()
		delete(s.artboards, h)
	}
	for h, f := range s.files {
		f.Close()
		delete(s.files, h)
	}
	for h, img := range s.images {
		img.Close()
		delete(s.images, h)
	}
	for h, a := range s.audio {
		a.Close()
		delete(s.audio, h)
	}
	for h, f := range s.fonts {
		f.Close()
		delete(s.fonts, h)
	}
	for h, t := range s.targets {
		if tt, ok := t.(*render.TextureTarget); ok {
			tt.Destroy()
		}
		delete(s.targets, h)
	}
	s.rc.Close()
}
