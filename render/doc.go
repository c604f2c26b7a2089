// Package render provides render contexts and render targets for the
// motion runtime.
//
// A RenderTarget is where artboard content ends up: PixmapTarget for
// CPU-backed rendering into an *image.RGBA, TextureTarget for GPU textures
// created through gogpu/wgpu's HAL. A Context owns the graphics device
// handed in by the host (a gpucontext.DeviceProvider) and the
// make-current/flush/present discipline around a frame.
//
// All types here are confined to the motion server goroutine; none are
// safe for concurrent use.
package render
