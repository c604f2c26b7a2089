// Package codec provides asset decoding helpers for engine
// implementations.
//
// Images decode through the standard image registry (PNG, JPEG, GIF)
// extended with WebP and BMP from golang.org/x/image. Fonts parse through
// go-text/typesetting. Audio decoding is not wired to a real decoder yet
// and reports that honestly via ErrAudioUnsupported.
package codec
