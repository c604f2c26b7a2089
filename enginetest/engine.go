package enginetest

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/motion/codec"
	"github.com/gogpu/motion/engine"
)

// Engine is an in-memory engine.Engine fed by JSON FileSpec documents.
// It records every file it loads so tests can reach into the minted
// object graph.
type Engine struct {
	// Files holds every file Load returned, in load order.
	Files []*File
}

var _ engine.Engine = (*Engine)(nil)

// New returns an empty Engine.
func New() *Engine {
	return &Engine{}
}

// Load parses a JSON FileSpec. Asset references in the spec must resolve
// through resolver or the load fails.
func (e *Engine) Load(data []byte, resolver engine.AssetResolver) (engine.File, error) {
	var spec FileSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrMalformed, err)
	}
	f := &File{
		Spec:   spec,
		Images: make(map[string]engine.ImageAsset),
		Audio:  make(map[string]engine.AudioAsset),
		Fonts:  make(map[string]engine.FontAsset),
	}
	for _, name := range spec.ImageRefs {
		if resolver == nil {
			return nil, fmt.Errorf("%w: image %q (no resolver)", engine.ErrNotFound, name)
		}
		img, ok := resolver.ResolveImage(name)
		if !ok {
			return nil, fmt.Errorf("%w: image %q", engine.ErrNotFound, name)
		}
		f.Images[name] = img
	}
	for _, name := range spec.AudioRefs {
		if resolver == nil {
			return nil, fmt.Errorf("%w: audio %q (no resolver)", engine.ErrNotFound, name)
		}
		a, ok := resolver.ResolveAudio(name)
		if !ok {
			return nil, fmt.Errorf("%w: audio %q", engine.ErrNotFound, name)
		}
		f.Audio[name] = a
	}
	for _, name := range spec.FontRefs {
		if resolver == nil {
			return nil, fmt.Errorf("%w: font %q (no resolver)", engine.ErrNotFound, name)
		}
		fa, ok := resolver.ResolveFont(name)
		if !ok {
			return nil, fmt.Errorf("%w: font %q", engine.ErrNotFound, name)
		}
		f.Fonts[name] = fa
	}
	e.Files = append(e.Files, f)
	return f, nil
}

// DecodeImage decodes raster bytes through the codec package.
func (e *Engine) DecodeImage(data []byte) (engine.ImageAsset, error) {
	img, err := codec.DecodeImage(data)
	if err != nil {
		return nil, err
	}
	return &ImageAsset{Img: img}, nil
}

// DecodeAudio reports ErrUnsupported; the test engine carries no audio
// runtime.
func (e *Engine) DecodeAudio(data []byte) (engine.AudioAsset, error) {
	d, err := codec.DecodeAudio(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrUnsupported, err)
	}
	return &AudioAsset{Seconds: d}, nil
}

// DecodeFont decodes font bytes through the codec package.
func (e *Engine) DecodeFont(data []byte) (engine.FontAsset, error) {
	f, err := codec.DecodeFont(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrMalformed, err)
	}
	return &FontAsset{Font: f}, nil
}

// MustSpec marshals a FileSpec into the bytes Load accepts. It panics on
// a marshal failure, which cannot happen for well-formed specs.
func MustSpec(spec FileSpec) []byte {
	data, err := json.Marshal(spec)
	if err != nil {
		panic(err)
	}
	return data
}
