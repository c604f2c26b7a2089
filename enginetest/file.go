package enginetest

import (
	"fmt"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/codec"
	"github.com/gogpu/motion/engine"
	"github.com/gogpu/motion/render"
)

// File is a loaded FileSpec. It records every artboard it instantiates.
type File struct {
	Spec   FileSpec
	Closed bool

	// Artboards holds every instance DefaultArtboard and ArtboardNamed
	// returned, in creation order.
	Artboards []*Artboard

	// Resolved assets, keyed by reference name.
	Images map[string]engine.ImageAsset
	Audio  map[string]engine.AudioAsset
	Fonts  map[string]engine.FontAsset
}

var _ engine.File = (*File)(nil)

func (f *File) ArtboardNames() []string {
	names := make([]string, len(f.Spec.Artboards))
	for i, a := range f.Spec.Artboards {
		names[i] = a.Name
	}
	return names
}

func (f *File) DefaultArtboard() (engine.Artboard, error) {
	if len(f.Spec.Artboards) == 0 {
		return nil, fmt.Errorf("%w: file has no artboards", engine.ErrNotFound)
	}
	return f.newArtboard(f.Spec.Artboards[0]), nil
}

func (f *File) ArtboardNamed(name string) (engine.Artboard, error) {
	for _, spec := range f.Spec.Artboards {
		if spec.Name == name {
			return f.newArtboard(spec), nil
		}
	}
	return nil, fmt.Errorf("%w: artboard %q", engine.ErrNotFound, name)
}

func (f *File) newArtboard(spec ArtboardSpec) *Artboard {
	a := &Artboard{
		Spec:   spec,
		file:   f,
		width:  spec.Width,
		height: spec.Height,
		scale:  1,
	}
	f.Artboards = append(f.Artboards, a)
	return a
}

func (f *File) ViewModelNames() []string {
	names := make([]string, len(f.Spec.ViewModels))
	for i, vm := range f.Spec.ViewModels {
		names[i] = vm.Name
	}
	return names
}

func (f *File) ViewModelAt(index int) (engine.ViewModel, error) {
	if index < 0 || index >= len(f.Spec.ViewModels) {
		return nil, fmt.Errorf("%w: view model index %d", engine.ErrOutOfRange, index)
	}
	return &ViewModel{Spec: f.Spec.ViewModels[index], file: f}, nil
}

func (f *File) ViewModelNamed(name string) (engine.ViewModel, error) {
	for _, spec := range f.Spec.ViewModels {
		if spec.Name == name {
			return &ViewModel{Spec: spec, file: f}, nil
		}
	}
	return nil, fmt.Errorf("%w: view model %q", engine.ErrNotFound, name)
}

func (f *File) DefaultViewModel(a engine.Artboard) (engine.ViewModel, error) {
	ta, ok := a.(*Artboard)
	if !ok || ta.Spec.ViewModel == "" {
		return nil, fmt.Errorf("%w: artboard has no default view model", engine.ErrNotFound)
	}
	return f.ViewModelNamed(ta.Spec.ViewModel)
}

func (f *File) Enums() []engine.Enum {
	return f.Spec.Enums
}

func (f *File) Close() {
	f.Closed = true
}

// Artboard is one instantiated artboard. Draw and Advance record their
// arguments for assertions.
type Artboard struct {
	Spec   ArtboardSpec
	Closed bool

	// DrawCount and LastView record Draw calls.
	DrawCount int
	LastView  motion.Matrix

	// Elapsed accumulates Advance time.
	Elapsed float64

	// Machines holds every state machine instantiated from this
	// artboard, in creation order.
	Machines []*StateMachine

	file   *File
	width  float64
	height float64
	scale  float64
}

var _ engine.Artboard = (*Artboard)(nil)

func (a *Artboard) Name() string { return a.Spec.Name }

func (a *Artboard) Bounds() motion.Rect {
	return motion.RectWH(a.width, a.height)
}

func (a *Artboard) Resize(w, h, scaleFactor float64) {
	a.width, a.height, a.scale = w, h, scaleFactor
}

func (a *Artboard) ResetSize() {
	a.width, a.height, a.scale = a.Spec.Width, a.Spec.Height, 1
}

// Scale returns the layout scale factor set by the last Resize.
func (a *Artboard) Scale() float64 { return a.scale }

func (a *Artboard) StateMachineNames() []string {
	names := make([]string, len(a.Spec.StateMachines))
	for i, sm := range a.Spec.StateMachines {
		names[i] = sm.Name
	}
	return names
}

func (a *Artboard) DefaultStateMachine() (engine.StateMachine, error) {
	if len(a.Spec.StateMachines) == 0 {
		return nil, fmt.Errorf("%w: artboard has no state machines", engine.ErrNotFound)
	}
	return newStateMachine(a, a.Spec.StateMachines[0]), nil
}

func (a *Artboard) StateMachineNamed(name string) (engine.StateMachine, error) {
	for _, spec := range a.Spec.StateMachines {
		if spec.Name == name {
			return newStateMachine(a, spec), nil
		}
	}
	return nil, fmt.Errorf("%w: state machine %q", engine.ErrNotFound, name)
}

func (a *Artboard) AnimationNames() []string {
	names := make([]string, len(a.Spec.Animations))
	for i, an := range a.Spec.Animations {
		names[i] = an.Name
	}
	return names
}

func (a *Artboard) AnimationAt(index int) (engine.Animation, error) {
	if index < 0 || index >= len(a.Spec.Animations) {
		return nil, fmt.Errorf("%w: animation index %d", engine.ErrOutOfRange, index)
	}
	return &Animation{Spec: a.Spec.Animations[index], artboard: a}, nil
}

func (a *Artboard) AnimationNamed(name string) (engine.Animation, error) {
	for _, spec := range a.Spec.Animations {
		if spec.Name == name {
			return &Animation{Spec: spec, artboard: a}, nil
		}
	}
	return nil, fmt.Errorf("%w: animation %q", engine.ErrNotFound, name)
}

func (a *Artboard) Advance(dt float64) bool {
	a.Elapsed += dt
	return true
}

func (a *Artboard) Draw(target render.RenderTarget, view motion.Matrix) error {
	if target == nil {
		return fmt.Errorf("%w: nil render target", engine.ErrUnsupported)
	}
	a.DrawCount++
	a.LastView = view
	return nil
}

func (a *Artboard) Close() {
	a.Closed = true
}

// PointerKind tags one recorded pointer delivery.
type PointerKind uint8

const (
	PointerMove PointerKind = iota
	PointerDown
	PointerUp
	PointerExit
)

// PointerRecord is one pointer event a StateMachine received,
// post-transform, in artboard space.
type PointerRecord struct {
	Kind  PointerKind
	Point motion.Point
}

// StateMachine is one instantiated state machine. It records advances,
// pointer deliveries, and its current binding.
type StateMachine struct {
	Spec   StateMachineSpec
	Closed bool

	// Elapsed accumulates Advance time; the machine settles once it
	// passes Spec.SettleAfter.
	Elapsed float64

	// Pointers records delivered pointer events in order.
	Pointers []PointerRecord

	// Bound is the instance attached by the last Bind, nil if none.
	Bound engine.ViewModelInstance

	artboard *Artboard
	inputs   map[string]engine.Input
}

var _ engine.StateMachine = (*StateMachine)(nil)

func newStateMachine(a *Artboard, spec StateMachineSpec) *StateMachine {
	sm := &StateMachine{
		Spec:     spec,
		artboard: a,
		inputs:   make(map[string]engine.Input, len(spec.Inputs)),
	}
	for _, in := range spec.Inputs {
		switch inputTypes[in.Type] {
		case engine.InputNumber:
			sm.inputs[in.Name] = &numberInput{name: in.Name, value: in.Number}
		case engine.InputBoolean:
			sm.inputs[in.Name] = &booleanInput{name: in.Name, value: in.Boolean}
		case engine.InputTrigger:
			sm.inputs[in.Name] = &triggerInput{name: in.Name}
		}
	}
	a.Machines = append(a.Machines, sm)
	return sm
}

func (sm *StateMachine) Name() string              { return sm.Spec.Name }
func (sm *StateMachine) Artboard() engine.Artboard { return sm.artboard }

func (sm *StateMachine) Advance(dt float64) bool {
	sm.Elapsed += dt
	return sm.Elapsed >= sm.Spec.SettleAfter
}

func (sm *StateMachine) Bind(vmi engine.ViewModelInstance) error {
	sm.Bound = vmi
	return nil
}

func (sm *StateMachine) Input(name string) (engine.Input, bool) {
	in, ok := sm.inputs[name]
	return in, ok
}

func (sm *StateMachine) PointerMove(p motion.Point) {
	sm.Pointers = append(sm.Pointers, PointerRecord{Kind: PointerMove, Point: p})
}

func (sm *StateMachine) PointerDown(p motion.Point) {
	sm.Pointers = append(sm.Pointers, PointerRecord{Kind: PointerDown, Point: p})
}

func (sm *StateMachine) PointerUp(p motion.Point) {
	sm.Pointers = append(sm.Pointers, PointerRecord{Kind: PointerUp, Point: p})
}

func (sm *StateMachine) PointerExit(p motion.Point) {
	sm.Pointers = append(sm.Pointers, PointerRecord{Kind: PointerExit, Point: p})
}

func (sm *StateMachine) Close() {
	sm.Closed = true
}

type numberInput struct {
	name  string
	value float64
}

func (n *numberInput) Name() string           { return n.name }
func (n *numberInput) Type() engine.InputType { return engine.InputNumber }
func (n *numberInput) Value() float64         { return n.value }
func (n *numberInput) SetValue(v float64)     { n.value = v }

type booleanInput struct {
	name  string
	value bool
}

func (b *booleanInput) Name() string           { return b.name }
func (b *booleanInput) Type() engine.InputType { return engine.InputBoolean }
func (b *booleanInput) Value() bool            { return b.value }
func (b *booleanInput) SetValue(v bool)        { b.value = v }

type triggerInput struct {
	name  string
	fired int
}

func (t *triggerInput) Name() string           { return t.name }
func (t *triggerInput) Type() engine.InputType { return engine.InputTrigger }
func (t *triggerInput) Fire()                  { t.fired++ }

// Animation is one instantiated linear animation. Advance reports
// running until Elapsed reaches Spec.Duration.
type Animation struct {
	Spec    AnimationSpec
	Closed  bool
	Elapsed float64

	artboard *Artboard
}

var _ engine.Animation = (*Animation)(nil)

func (a *Animation) Name() string { return a.Spec.Name }

func (a *Animation) Advance(dt float64) bool {
	a.Elapsed += dt
	return a.Elapsed < a.Spec.Duration
}

func (a *Animation) Close() {
	a.Closed = true
}

// ImageAsset is a decoded raster image.
type ImageAsset struct {
	Img    *codec.Image
	Closed bool
}

var _ engine.ImageAsset = (*ImageAsset)(nil)

func (a *ImageAsset) Width() int  { return a.Img.Width }
func (a *ImageAsset) Height() int { return a.Img.Height }
func (a *ImageAsset) Close()      { a.Closed = true }

// AudioAsset is a decoded audio clip.
type AudioAsset struct {
	Seconds float64
	Closed  bool
}

var _ engine.AudioAsset = (*AudioAsset)(nil)

func (a *AudioAsset) Duration() float64 { return a.Seconds }
func (a *AudioAsset) Close()            { a.Closed = true }

// FontAsset is a decoded font.
type FontAsset struct {
	Font   *font.Font
	Closed bool
}

var _ engine.FontAsset = (*FontAsset)(nil)

func (a *FontAsset) Close() { a.Closed = true }
