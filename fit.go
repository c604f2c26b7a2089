package motion

import "math"

// Fit describes how content bounds are scaled into a frame.
//
// Fit values are transmitted across the command surface as small integer
// ordinals; the ordinal of each constant is part of the public contract.
type Fit uint8

const (
	// FitFill scales X and Y independently so content exactly fills the
	// frame, ignoring aspect ratio.
	FitFill Fit = iota

	// FitContain scales uniformly so the whole content fits inside the
	// frame, possibly leaving empty space.
	FitContain

	// FitCover scales uniformly so content covers the whole frame,
	// possibly cropping content.
	FitCover

	// FitFitWidth scales uniformly so content width matches frame width.
	FitFitWidth

	// FitFitHeight scales uniformly so content height matches frame height.
	FitFitHeight

	// FitNone applies no scaling.
	FitNone

	// FitScaleDown behaves like FitContain but never scales up.
	FitScaleDown

	// FitLayout scales uniformly by an explicit layout scale factor,
	// expecting the content itself to have been resized to the frame.
	FitLayout
)

// String returns a human-readable name for the fit mode.
func (f Fit) String() string {
	switch f {
	case FitFill:
		return "Fill"
	case FitContain:
		return "Contain"
	case FitCover:
		return "Cover"
	case FitFitWidth:
		return "FitWidth"
	case FitFitHeight:
		return "FitHeight"
	case FitNone:
		return "None"
	case FitScaleDown:
		return "ScaleDown"
	case FitLayout:
		return "Layout"
	}
	return "Unknown"
}

// Alignment positions content within a frame after fitting.
// The nine values form a 3x3 grid in row-major order:
// top/center/bottom rows, left/center/right columns.
type Alignment uint8

const (
	AlignTopLeft Alignment = iota
	AlignTopCenter
	AlignTopRight
	AlignCenterLeft
	AlignCenter
	AlignCenterRight
	AlignBottomLeft
	AlignBottomCenter
	AlignBottomRight
)

// String returns a human-readable name for the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignTopLeft:
		return "TopLeft"
	case AlignTopCenter:
		return "TopCenter"
	case AlignTopRight:
		return "TopRight"
	case AlignCenterLeft:
		return "CenterLeft"
	case AlignCenter:
		return "Center"
	case AlignCenterRight:
		return "CenterRight"
	case AlignBottomLeft:
		return "BottomLeft"
	case AlignBottomCenter:
		return "BottomCenter"
	case AlignBottomRight:
		return "BottomRight"
	}
	return "Unknown"
}

// Factors returns the alignment as (x, y) factors in [-1, 1]:
// -1 is left/top, 0 is center, 1 is right/bottom.
func (a Alignment) Factors() (x, y float64) {
	switch a % 3 {
	case 0:
		x = -1
	case 1:
		x = 0
	case 2:
		x = 1
	}
	switch a / 3 {
	case 0:
		y = -1
	case 1:
		y = 0
	default:
		y = 1
	}
	return x, y
}

// ComputeAlignment computes the transform mapping content space into frame
// space for the given fit and alignment. scaleFactor is used only by
// FitLayout, where the caller has already resized the content to the frame
// and wants a uniform scale applied on top.
//
// Degenerate content bounds (zero width or height) yield a non-invertible
// matrix; callers relying on the inverse should use Matrix.Invert, whose
// identity fallback passes coordinates through unchanged.
func ComputeAlignment(fit Fit, align Alignment, frame, content Rect, scaleFactor float64) Matrix {
	sx := 1.0
	sy := 1.0
	if content.Width() != 0 && content.Height() != 0 {
		sx = frame.Width() / content.Width()
		sy = frame.Height() / content.Height()
	}

	switch fit {
	case FitFill:
		// independent axes, keep sx/sy as computed
	case FitContain:
		s := math.Min(sx, sy)
		sx, sy = s, s
	case FitCover:
		s := math.Max(sx, sy)
		sx, sy = s, s
	case FitFitWidth:
		sy = sx
	case FitFitHeight:
		sx = sy
	case FitNone:
		sx, sy = 1, 1
	case FitScaleDown:
		s := math.Min(math.Min(sx, sy), 1)
		sx, sy = s, s
	case FitLayout:
		sx, sy = scaleFactor, scaleFactor
	}

	ax, ay := align.Factors()
	tx := frame.Min.X - content.Min.X*sx + (frame.Width()-content.Width()*sx)*(ax+1)/2
	ty := frame.Min.Y - content.Min.Y*sy + (frame.Height()-content.Height()*sy)*(ay+1)/2

	return Matrix{
		A: sx, B: 0, C: tx,
		D: 0, E: sy, F: ty,
	}
}
