package engine

import (
	"errors"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/render"
)

// Common errors returned by engine implementations. The motion server
// matches on these with errors.Is to classify handler failures, so
// implementations should wrap them rather than invent parallel sentinels.
var (
	// ErrNotFound is returned when a named sub-resource (artboard, state
	// machine, view model, property, input) does not exist.
	ErrNotFound = errors.New("engine: not found")

	// ErrTypeMismatch is returned when a property or input is addressed
	// through the wrong typed accessor.
	ErrTypeMismatch = errors.New("engine: type mismatch")

	// ErrOutOfRange is returned when a list index is outside [0, size).
	ErrOutOfRange = errors.New("engine: index out of range")

	// ErrUnsupported is returned for features an implementation has not
	// wired up, such as an asset codec.
	ErrUnsupported = errors.New("engine: unsupported")

	// ErrMalformed is returned when the engine refuses to construct a
	// resource from corrupt input bytes.
	ErrMalformed = errors.New("engine: malformed data")
)

// Engine loads animation files and decodes standalone assets.
//
// Implementations are called exclusively from the motion server goroutine
// and need not be safe for concurrent use.
type Engine interface {
	// Load parses file bytes into a File. The resolver supplies
	// out-of-band assets referenced by name from within the file; it may
	// be nil when the file embeds all its assets.
	Load(data []byte, resolver AssetResolver) (File, error)

	// DecodeImage decodes raster image bytes into an image asset.
	DecodeImage(data []byte) (ImageAsset, error)

	// DecodeAudio decodes audio bytes into an audio asset.
	DecodeAudio(data []byte) (AudioAsset, error)

	// DecodeFont decodes font bytes into a font asset.
	DecodeFont(data []byte) (FontAsset, error)
}

// AssetResolver resolves named assets during File load.
type AssetResolver interface {
	ResolveImage(name string) (ImageAsset, bool)
	ResolveAudio(name string) (AudioAsset, bool)
	ResolveFont(name string) (FontAsset, bool)
}

// Enum describes one enumeration exported by a file: a name and its
// ordered member values.
type Enum struct {
	Name   string
	Values []string
}

// File is a loaded animation file. It can mint artboard and view-model
// instances; instances created from it outlive any bookkeeping inside the
// file and are released independently.
type File interface {
	// ArtboardNames returns artboard names in file order.
	ArtboardNames() []string

	// DefaultArtboard instantiates the file's default artboard.
	DefaultArtboard() (Artboard, error)

	// ArtboardNamed instantiates the artboard with the given name.
	ArtboardNamed(name string) (Artboard, error)

	// ViewModelNames returns view-model names in file order.
	ViewModelNames() []string

	// ViewModelAt returns the view model at the given file index.
	ViewModelAt(index int) (ViewModel, error)

	// ViewModelNamed returns the view model with the given name.
	ViewModelNamed(name string) (ViewModel, error)

	// DefaultViewModel returns the view model an artboard binds by default.
	DefaultViewModel(a Artboard) (ViewModel, error)

	// Enums returns the enumerations defined by the file.
	Enums() []Enum

	// Close releases the file. Instances created from it stay valid.
	Close()
}

// Artboard is an instantiated drawable scene.
type Artboard interface {
	// Name returns the artboard's name.
	Name() string

	// Bounds returns the artboard's current bounds in artboard space.
	Bounds() motion.Rect

	// Resize sets the artboard's size and layout scale factor.
	Resize(w, h, scaleFactor float64)

	// ResetSize restores the width and height the artboard had when the
	// file was loaded.
	ResetSize()

	// StateMachineNames returns state-machine names in artboard order.
	StateMachineNames() []string

	// DefaultStateMachine instantiates the artboard's default state machine.
	DefaultStateMachine() (StateMachine, error)

	// StateMachineNamed instantiates the named state machine.
	StateMachineNamed(name string) (StateMachine, error)

	// AnimationNames returns animation names in artboard order.
	AnimationNames() []string

	// AnimationAt instantiates the animation at the given index.
	AnimationAt(index int) (Animation, error)

	// AnimationNamed instantiates the named animation.
	AnimationNamed(name string) (Animation, error)

	// Advance steps the artboard by dt seconds and reports whether
	// anything still needs to advance.
	Advance(dt float64) bool

	// Draw renders the artboard into the target under the given view
	// transform (content space to target space).
	Draw(target render.RenderTarget, view motion.Matrix) error

	// Close releases the artboard instance.
	Close()
}

// Animation is a single animation instance playing over an artboard.
type Animation interface {
	// Name returns the animation's name.
	Name() string

	// Advance steps the animation by dt seconds and applies it to its
	// artboard, reporting whether the animation is still running.
	Advance(dt float64) bool

	// Close releases the animation instance.
	Close()
}
