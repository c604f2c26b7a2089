package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"

	// Standard raster formats register themselves with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// Extended raster formats from x/image.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decoding errors.
var (
	// ErrEmptyData is returned when the input is empty.
	ErrEmptyData = errors.New("codec: empty data")

	// ErrAudioUnsupported is returned by DecodeAudio; no audio decoder is
	// wired up yet.
	ErrAudioUnsupported = errors.New("codec: audio decoding not implemented")
)

// Image is a decoded raster image in non-premultiplied RGBA, 4 bytes per
// pixel, row by row with no padding.
type Image struct {
	Pix    []byte
	Width  int
	Height int
}

// DecodeImage decodes raster image bytes, auto-detecting the format.
// Supported formats: PNG, JPEG, GIF, WebP, BMP.
func DecodeImage(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("codec: decode image: %w", err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return &Image{
		Pix:    rgba.Pix,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// DecodeAudio decodes audio clip bytes.
//
// TODO: wire a real decoder (WAV at minimum) before exposing audio assets
// beyond the registration tables.
func DecodeAudio(data []byte) (duration float64, err error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	return 0, ErrAudioUnsupported
}
