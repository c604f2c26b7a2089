package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestPixmapTarget(t *testing.T) {
	pt := NewPixmapTarget(16, 9)

	if pt.Width() != 16 || pt.Height() != 9 {
		t.Errorf("size = %dx%d, want 16x9", pt.Width(), pt.Height())
	}
	if pt.Stride() != 16*4 {
		t.Errorf("Stride() = %d, want %d", pt.Stride(), 16*4)
	}
	if got, want := len(pt.Pixels()), 16*9*4; got != want {
		t.Errorf("len(Pixels()) = %d, want %d", got, want)
	}
	if pt.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", pt.Format())
	}
}

func TestPixmapTarget_Clear(t *testing.T) {
	pt := NewPixmapTarget(4, 4)
	pt.Clear(color.RGBA{R: 255, G: 128, B: 0, A: 255})

	pix := pt.Pixels()
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 255 || pix[i+1] != 128 || pix[i+2] != 0 || pix[i+3] != 255 {
			t.Fatalf("pixel %d = %v, want [255 128 0 255]", i/4, pix[i:i+4])
		}
	}
}

func TestPixmapTarget_Resize(t *testing.T) {
	pt := NewPixmapTarget(4, 4)
	pt.Resize(10, 2)
	if pt.Width() != 10 || pt.Height() != 2 {
		t.Errorf("size after resize = %dx%d, want 10x2", pt.Width(), pt.Height())
	}
	if got, want := len(pt.Pixels()), 10*2*4; got != want {
		t.Errorf("len(Pixels()) after resize = %d, want %d", got, want)
	}
}

func TestContext_CPUOnly(t *testing.T) {
	c := NewContext(nil)

	if c.HasDevice() {
		t.Fatal("HasDevice() = true for nil provider")
	}
	if c.IsCurrent() {
		t.Error("IsCurrent() = true before MakeCurrent")
	}
	if err := c.MakeCurrent(); err != nil {
		t.Fatalf("MakeCurrent() error = %v", err)
	}
	if !c.IsCurrent() {
		t.Error("IsCurrent() = false after MakeCurrent")
	}
	if err := c.Flush(); err != nil {
		t.Errorf("Flush() error = %v", err)
	}
	if err := c.Present(NewPixmapTarget(8, 8)); err != nil {
		t.Errorf("Present() error = %v", err)
	}
}

func TestContext_Closed(t *testing.T) {
	c := NewContext(nil)
	c.Close()

	if err := c.MakeCurrent(); !errors.Is(err, ErrContextClosed) {
		t.Errorf("MakeCurrent() after Close error = %v, want ErrContextClosed", err)
	}
	if err := c.Flush(); !errors.Is(err, ErrContextClosed) {
		t.Errorf("Flush() after Close error = %v, want ErrContextClosed", err)
	}
	if c.IsCurrent() {
		t.Error("IsCurrent() = true after Close")
	}
}
