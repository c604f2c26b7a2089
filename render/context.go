package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// Common context errors.
var (
	// ErrContextClosed is returned when operations are attempted on a
	// closed context.
	ErrContextClosed = errors.New("render: context is closed")

	// ErrNoDevice is returned when a GPU operation needs a device but the
	// context was created without one.
	ErrNoDevice = errors.New("render: no GPU device")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("render: invalid dimensions")
)

// halProvider is implemented by device providers that expose direct HAL
// access, such as gogpu.App's context provider.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// Context owns the graphics device for one motion server and the
// make-current/flush/present discipline around a frame.
//
// The provider comes from the host application (e.g. gogpu's
// GPUContextProvider). A nil provider creates a CPU-only context where
// every GPU call is a no-op; PixmapTargets still work.
//
// Context is confined to the server goroutine for its entire lifetime.
type Context struct {
	provider      gpucontext.DeviceProvider
	device        hal.Device
	queue         hal.Queue
	presentShader hal.ShaderModule
	current       bool
	closed        bool
}

// NewContext creates a render context on the given device provider.
// Pass nil for CPU-only rendering.
func NewContext(provider gpucontext.DeviceProvider) *Context {
	c := &Context{provider: provider}

	// HAL access is optional: providers without it fall back to CPU paths.
	if hp, ok := provider.(halProvider); ok {
		if d, ok := hp.HalDevice().(hal.Device); ok {
			c.device = d
		}
		if q, ok := hp.HalQueue().(hal.Queue); ok {
			c.queue = q
		}
	}
	return c
}

// HasDevice reports whether the context has direct HAL device access.
func (c *Context) HasDevice() bool {
	return c.device != nil && c.queue != nil
}

// MakeCurrent establishes this context as the active graphics context for
// the calling goroutine. It must be called before drawing each frame.
func (c *Context) MakeCurrent() error {
	if c.closed {
		return ErrContextClosed
	}
	if c.HasDevice() {
		if _, err := c.presentShaderModule(); err != nil {
			return err
		}
	}
	c.current = true
	return nil
}

// IsCurrent reports whether MakeCurrent has been called since creation or
// the last Close.
func (c *Context) IsCurrent() bool {
	return c.current && !c.closed
}

// Flush submits batched drawing work to the device. For CPU-only contexts
// this is a no-op as drawing is synchronous.
func (c *Context) Flush() error {
	if c.closed {
		return ErrContextClosed
	}
	if c.queue == nil {
		return nil
	}
	// Fire and forget: presentation waits on the queue, not on a fence.
	if _, err := c.queue.Submit(nil); err != nil {
		return fmt.Errorf("render: flush submit: %w", err)
	}
	return nil
}

// Present publishes the target's content. Texture targets upload their
// staged pixels to the GPU; pixmap targets already hold their pixels and
// need no work.
func (c *Context) Present(t RenderTarget) error {
	if c.closed {
		return ErrContextClosed
	}
	if tt, ok := t.(*TextureTarget); ok {
		return tt.upload(c)
	}
	return nil
}

// Close releases the context. Targets created from it must be destroyed
// separately, before or after.
func (c *Context) Close() {
	if c.presentShader != nil && c.device != nil {
		c.device.DestroyShaderModule(c.presentShader)
		c.presentShader = nil
	}
	c.closed = true
	c.current = false
}
