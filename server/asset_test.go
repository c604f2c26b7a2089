package server

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/motion/enginetest"
)

// pngBytes encodes a small solid PNG for decode tests.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestServer_DecodeImage(t *testing.T) {
	s, _ := newTestServer(t)

	s.DecodeImage(1, pngBytes(t, 8, 4))
	m := drainOne(t, s)
	if m.Type != MsgImageDecoded || m.Handle == NilHandle {
		t.Fatalf("got %+v, want ImageDecoded", m)
	}

	s.DecodeImage(2, []byte("not an image"))
	if m := drainOne(t, s); m.Type != MsgAssetError {
		t.Errorf("garbage: got %+v, want AssetError", m)
	}
}

func TestServer_DecodeAudioUnsupported(t *testing.T) {
	s, _ := newTestServer(t)

	s.DecodeAudio(1, []byte{0, 1, 2, 3})
	if m := drainOne(t, s); m.Type != MsgAssetError {
		t.Errorf("got %+v, want AssetError", m)
	}
}

func TestServer_DecodeFont(t *testing.T) {
	s, _ := newTestServer(t)

	s.DecodeFont(1, goregular.TTF)
	m := drainOne(t, s)
	if m.Type != MsgFontDecoded || m.Handle == NilHandle {
		t.Fatalf("got %+v, want FontDecoded", m)
	}

	s.DecodeFont(2, []byte("not a font"))
	if m := drainOne(t, s); m.Type != MsgAssetError {
		t.Errorf("garbage: got %+v, want AssetError", m)
	}
}

func TestServer_AssetRegistry(t *testing.T) {
	s, _ := newTestServer(t)

	s.DecodeImage(1, pngBytes(t, 4, 4))
	img := drainOne(t, s).Handle

	// Register under the name a file will reference.
	s.RegisterImage(2, "logo", img)
	spec := enginetest.FileSpec{
		Artboards: []enginetest.ArtboardSpec{{Name: "A", Width: 10, Height: 10}},
		ImageRefs: []string{"logo"},
	}
	s.LoadFile(3, enginetest.MustSpec(spec))
	if m := drainOne(t, s); m.Type != MsgFileLoaded {
		t.Fatalf("load with registered asset: got %+v, want FileLoaded", m)
	}

	// After unregistering, the same file fails to resolve.
	s.UnregisterImage("logo")
	s.LoadFile(4, enginetest.MustSpec(spec))
	if m := drainOne(t, s); m.Type != MsgFileError {
		t.Errorf("load after unregister: got %+v, want FileError", m)
	}

	// Registering a dead handle fails.
	s.RegisterImage(5, "ghost", Handle(9999))
	if m := drainOne(t, s); m.Type != MsgAssetError {
		t.Errorf("got %+v, want AssetError", m)
	}
}

func TestServer_DeleteAssets(t *testing.T) {
	s, _ := newTestServer(t)

	s.DecodeImage(1, pngBytes(t, 4, 4))
	img := drainOne(t, s).Handle
	s.RegisterImage(2, "logo", img)

	s.DeleteImage(3, img)
	if m := drainOne(t, s); m.Type != MsgImageDeleted {
		t.Fatalf("got %+v, want ImageDeleted", m)
	}

	// Deletion also removed the registry entry.
	spec := enginetest.FileSpec{
		Artboards: []enginetest.ArtboardSpec{{Name: "A", Width: 10, Height: 10}},
		ImageRefs: []string{"logo"},
	}
	s.LoadFile(4, enginetest.MustSpec(spec))
	if m := drainOne(t, s); m.Type != MsgFileError {
		t.Errorf("load after asset delete: got %+v, want FileError", m)
	}

	s.DeleteImage(5, img)
	if m := drainOne(t, s); m.Type != MsgAssetError {
		t.Errorf("double delete: got %+v, want AssetError", m)
	}
}
