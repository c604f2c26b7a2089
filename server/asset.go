package server

import (
	"fmt"

	"github.com/gogpu/motion/engine"
)

// DecodeImage decodes image bytes into an image asset.
// Produces ImageDecoded or AssetError.
func (s *Server) DecodeImage(requestID uint64, data []byte) {
	s.enqueue(Command{typ: cmdDecodeImage, requestID: requestID, data: data})
}

// DecodeAudio decodes audio bytes into an audio asset.
// Produces AudioDecoded or AssetError.
func (s *Server) DecodeAudio(requestID uint64, data []byte) {
	s.enqueue(Command{typ: cmdDecodeAudio, requestID: requestID, data: data})
}

// DecodeFont decodes font bytes into a font asset.
// Produces FontDecoded or AssetError.
func (s *Server) DecodeFont(requestID uint64, data []byte) {
	s.enqueue(Command{typ: cmdDecodeFont, requestID: requestID, data: data})
}

// DeleteImage releases a decoded image asset. Deleting an asset that is
// still registered also removes its registry entries.
// Produces ImageDeleted or AssetError.
func (s *Server) DeleteImage(requestID uint64, image Handle) {
	s.enqueue(Command{typ: cmdDeleteImage, requestID: requestID, handle: image})
}

// DeleteAudio releases a decoded audio asset.
// Produces AudioDeleted or AssetError.
func (s *Server) DeleteAudio(requestID uint64, audio Handle) {
	s.enqueue(Command{typ: cmdDeleteAudio, requestID: requestID, handle: audio})
}

// DeleteFont releases a decoded font asset.
// Produces FontDeleted or AssetError.
func (s *Server) DeleteFont(requestID uint64, font Handle) {
	s.enqueue(Command{typ: cmdDeleteFont, requestID: requestID, handle: font})
}

// RegisterImage publishes a decoded image under a name so files loaded
// afterwards can resolve it. Registering a name again replaces the
// previous entry. Produces AssetError on an invalid handle; success is
// silent.
func (s *Server) RegisterImage(requestID uint64, name string, image Handle) {
	s.enqueue(Command{typ: cmdRegisterImage, requestID: requestID, handle: image, name: name})
}

// RegisterAudio publishes a decoded audio clip under a name.
// See RegisterImage.
func (s *Server) RegisterAudio(requestID uint64, name string, audio Handle) {
	s.enqueue(Command{typ: cmdRegisterAudio, requestID: requestID, handle: audio, name: name})
}

// RegisterFont publishes a decoded font under a name. See RegisterImage.
func (s *Server) RegisterFont(requestID uint64, name string, font Handle) {
	s.enqueue(Command{typ: cmdRegisterFont, requestID: requestID, handle: font, name: name})
}

// UnregisterImage removes a name from the image registry. The asset
// itself stays alive until deleted. Unknown names are ignored.
func (s *Server) UnregisterImage(name string) {
	s.enqueue(Command{typ: cmdUnregisterImage, name: name})
}

// UnregisterAudio removes a name from the audio registry.
func (s *Server) UnregisterAudio(name string) {
	s.enqueue(Command{typ: cmdUnregisterAudio, name: name})
}

// UnregisterFont removes a name from the font registry.
func (s *Server) UnregisterFont(name string) {
	s.enqueue(Command{typ: cmdUnregisterFont, name: name})
}

// registryResolver resolves named assets out of the server's registries
// during File load. Load runs on the server goroutine, so the map reads
// need no locking.
type registryResolver struct {
	s *Server
}

func (r registryResolver) ResolveImage(name string) (engine.ImageAsset, bool) {
	h, ok := r.s.imagesByName[name]
	if !ok {
		return nil, false
	}
	img, ok := r.s.images[h]
	return img, ok
}

func (r registryResolver) ResolveAudio(name string) (engine.AudioAsset, bool) {
	h, ok := r.s.audioByName[name]
	if !ok {
		return nil, false
	}
	a, ok := r.s.audio[h]
	return a, ok
}

func (r registryResolver) ResolveFont(name string) (engine.FontAsset, bool) {
	h, ok := r.s.fontsByName[name]
	if !ok {
		return nil, false
	}
	f, ok := r.s.fonts[h]
	return f, ok
}

func (s *Server) resolver() engine.AssetResolver {
	return registryResolver{s: s}
}

func (s *Server) assetError(c Command, err error) {
	s.post(Message{Type: MsgAssetError, RequestID: c.requestID, Err: err.Error()})
}

func (s *Server) applyDecodeAsset(c Command) {
	switch c.typ {
	case cmdDecodeImage:
		img, err := s.eng.DecodeImage(c.data)
		if err != nil {
			s.assetError(c, fmt.Errorf("decode image: %w", err))
			return
		}
		h := s.handles.Allocate()
		s.images[h] = img
		s.post(Message{Type: MsgImageDecoded, RequestID: c.requestID, Handle: h})
	case cmdDecodeAudio:
		a, err := s.eng.DecodeAudio(c.data)
		if err != nil {
			s.assetError(c, fmt.Errorf("decode audio: %w", err))
			return
		}
		h := s.handles.Allocate()
		s.audio[h] = a
		s.post(Message{Type: MsgAudioDecoded, RequestID: c.requestID, Handle: h})
	case cmdDecodeFont:
		f, err := s.eng.DecodeFont(c.data)
		if err != nil {
			s.assetError(c, fmt.Errorf("decode font: %w", err))
			return
		}
		h := s.handles.Allocate()
		s.fonts[h] = f
		s.post(Message{Type: MsgFontDecoded, RequestID: c.requestID, Handle: h})
	}
}

// dropRegistrations removes every registry name pointing at handle.
func dropRegistrations(byName map[string]Handle, h Handle) {
	for name, rh := range byName {
		if rh == h {
			delete(byName, name)
		}
	}
}

func (s *Server) applyDeleteAsset(c Command) {
	switch c.typ {
	case cmdDeleteImage:
		img, ok := s.images[c.handle]
		if !ok {
			s.assetError(c, fmt.Errorf("%w: image %d", ErrInvalidHandle, c.handle))
			return
		}
		delete(s.images, c.handle)
		dropRegistrations(s.imagesByName, c.handle)
		img.Close()
		s.post(Message{Type: MsgImageDeleted, RequestID: c.requestID, Handle: c.handle})
	case cmdDeleteAudio:
		a, ok := s.audio[c.handle]
		if !ok {
			s.assetError(c, fmt.Errorf("%w: audio %d", ErrInvalidHandle, c.handle))
			return
		}
		delete(s.audio, c.handle)
		dropRegistrations(s.audioByName, c.handle)
		a.Close()
		s.post(Message{Type: MsgAudioDeleted, RequestID: c.requestID, Handle: c.handle})
	case cmdDeleteFont:
		f, ok := s.fonts[c.handle]
		if !ok {
			s.assetError(c, fmt.Errorf("%w: font %d", ErrInvalidHandle, c.handle))
			return
		}
		delete(s.fonts, c.handle)
		dropRegistrations(s.fontsByName, c.handle)
		f.Close()
		s.post(Message{Type: MsgFontDeleted, RequestID: c.requestID, Handle: c.handle})
	}
}

func (s *Server) applyRegisterAsset(c Command) {
	switch c.typ {
	case cmdRegisterImage:
		if _, ok := s.images[c.handle]; !ok {
			s.assetError(c, fmt.Errorf("%w: image %d", ErrInvalidHandle, c.handle))
			return
		}
		s.imagesByName[c.name] = c.handle
	case cmdRegisterAudio:
		if _, ok := s.audio[c.handle]; !ok {
			s.assetError(c, fmt.Errorf("%w: audio %d", ErrInvalidHandle, c.handle))
			return
		}
		s.audioByName[c.name] = c.handle
	case cmdRegisterFont:
		if _, ok := s.fonts[c.handle]; !ok {
			s.assetError(c, fmt.Errorf("%w: font %d", ErrInvalidHandle, c.handle))
			return
		}
		s.fontsByName[c.name] = c.handle
	}
}

func (s *Server) applyUnregisterAsset(c Command) {
	switch c.typ {
	case cmdUnregisterImage:
		delete(s.imagesByName, c.name)
	case cmdUnregisterAudio:
		delete(s.audioByName, c.name)
	case cmdUnregisterFont:
		delete(s.fontsByName, c.name)
	}
}
