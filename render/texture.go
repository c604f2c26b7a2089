package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// TextureTarget is a GPU texture-backed render target.
//
// The motion engine rasterizes on the CPU into the target's staging
// pixels; Context.Present uploads them to the texture through the HAL
// queue. The texture can then be composited by the host application.
type TextureTarget struct {
	width   int
	height  int
	format  gputypes.TextureFormat
	pixels  []byte
	texture hal.Texture
	view    hal.TextureView
	device  hal.Device
}

// NewTextureTarget creates a GPU texture render target on the context's
// device. The context must have HAL device access.
func NewTextureTarget(c *Context, width, height int, format gputypes.TextureFormat) (*TextureTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !c.HasDevice() {
		return nil, ErrNoDevice
	}

	desc := &hal.TextureDescriptor{
		Label: "motion-target",
		Size: hal.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        halFormat(format),
		Usage:         gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding | gputypes.TextureUsageRenderAttachment,
	}

	texture, err := c.device.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("render: create texture: %w", err)
	}

	viewDesc := &hal.TextureViewDescriptor{
		Label:     "motion-target (view)",
		Format:    gputypes.TextureFormatUndefined, // inherit from texture
		Dimension: gputypes.TextureViewDimensionUndefined,
		Aspect:    gputypes.TextureAspectAll,
	}
	view, err := c.device.CreateTextureView(texture, viewDesc)
	if err != nil {
		c.device.DestroyTexture(texture)
		return nil, fmt.Errorf("render: create texture view: %w", err)
	}

	return &TextureTarget{
		width:   width,
		height:  height,
		format:  format,
		pixels:  make([]byte, width*height*4),
		texture: texture,
		view:    view,
		device:  c.device,
	}, nil
}

// Width returns the target width in pixels.
func (t *TextureTarget) Width() int {
	return t.width
}

// Height returns the target height in pixels.
func (t *TextureTarget) Height() int {
	return t.height
}

// Format returns the pixel format.
func (t *TextureTarget) Format() gputypes.TextureFormat {
	return t.format
}

// Pixels returns the CPU staging pixels uploaded on Present.
func (t *TextureTarget) Pixels() []byte {
	return t.pixels
}

// Stride returns the number of bytes per row.
func (t *TextureTarget) Stride() int {
	return t.width * 4
}

// View returns the HAL texture view for compositing by the host.
func (t *TextureTarget) View() hal.TextureView {
	return t.view
}

// upload copies the staging pixels into the GPU texture.
func (t *TextureTarget) upload(c *Context) error {
	if t.texture == nil {
		return ErrNoDevice
	}
	if c.queue == nil {
		return ErrNoDevice
	}

	dst := &hal.ImageCopyTexture{
		Texture:  t.texture,
		MipLevel: 0,
		Origin:   hal.Origin3D{X: 0, Y: 0, Z: 0},
		Aspect:   gputypes.TextureAspectAll,
	}
	layout := &hal.ImageDataLayout{
		Offset:       0,
		BytesPerRow:  uint32(t.Stride()),
		RowsPerImage: uint32(t.height),
	}
	size := &hal.Extent3D{
		Width:              uint32(t.width),
		Height:             uint32(t.height),
		DepthOrArrayLayers: 1,
	}

	c.queue.WriteTexture(dst, t.pixels, layout, size)
	return nil
}

// Destroy releases GPU resources. The target must not be used afterwards.
func (t *TextureTarget) Destroy() {
	if t.device == nil {
		return
	}
	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.texture != nil {
		t.device.DestroyTexture(t.texture)
		t.texture = nil
	}
}

// halFormat converts a gputypes format to the wgpu HAL format.
func halFormat(format gputypes.TextureFormat) gputypes.TextureFormat {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm
	case gputypes.TextureFormatBGRA8Unorm:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}

// Ensure TextureTarget implements RenderTarget.
var _ RenderTarget = (*TextureTarget)(nil)
