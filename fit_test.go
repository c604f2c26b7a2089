package motion

import "testing"

func TestAlignment_Factors(t *testing.T) {
	tests := []struct {
		align  Alignment
		wantX  float64
		wantY  float64
	}{
		{AlignTopLeft, -1, -1},
		{AlignTopCenter, 0, -1},
		{AlignTopRight, 1, -1},
		{AlignCenterLeft, -1, 0},
		{AlignCenter, 0, 0},
		{AlignCenterRight, 1, 0},
		{AlignBottomLeft, -1, 1},
		{AlignBottomCenter, 0, 1},
		{AlignBottomRight, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			x, y := tt.align.Factors()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Factors() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestComputeAlignment(t *testing.T) {
	frame := RectWH(200, 100)

	tests := []struct {
		name    string
		fit     Fit
		align   Alignment
		frame   Rect
		content Rect
		scale   float64
		in      Point
		want    Point
	}{
		{
			name: "fill stretches both axes",
			fit:  FitFill, align: AlignCenter,
			frame: frame, content: RectWH(100, 50),
			in: Pt(100, 50), want: Pt(200, 100),
		},
		{
			name: "contain uses min scale and centers",
			fit:  FitContain, align: AlignCenter,
			frame: frame, content: RectWH(100, 100),
			in: Pt(0, 0), want: Pt(50, 0),
		},
		{
			name: "cover uses max scale",
			fit:  FitCover, align: AlignCenter,
			frame: frame, content: RectWH(100, 100),
			in: Pt(0, 0), want: Pt(0, -50),
		},
		{
			name: "none keeps content scale",
			fit:  FitNone, align: AlignTopLeft,
			frame: frame, content: RectWH(300, 300),
			in: Pt(10, 20), want: Pt(10, 20),
		},
		{
			name: "fit width follows horizontal scale",
			fit:  FitFitWidth, align: AlignTopLeft,
			frame: frame, content: RectWH(100, 100),
			in: Pt(50, 50), want: Pt(100, 100),
		},
		{
			name: "fit height follows vertical scale",
			fit:  FitFitHeight, align: AlignTopLeft,
			frame: frame, content: RectWH(100, 100),
			in: Pt(50, 50), want: Pt(50, 50),
		},
		{
			name: "scale down shrinks oversized content",
			fit:  FitScaleDown, align: AlignTopLeft,
			frame: RectWH(50, 50), content: RectWH(100, 100),
			in: Pt(100, 100), want: Pt(50, 50),
		},
		{
			name: "scale down never enlarges",
			fit:  FitScaleDown, align: AlignCenter,
			frame: RectWH(200, 200), content: RectWH(100, 100),
			in: Pt(0, 0), want: Pt(50, 50),
		},
		{
			name: "layout applies the given scale factor",
			fit:  FitLayout, align: AlignTopLeft,
			frame: frame, content: frame, scale: 2,
			in: Pt(10, 10), want: Pt(20, 20),
		},
		{
			name: "bottom right alignment",
			fit:  FitNone, align: AlignBottomRight,
			frame: frame, content: RectWH(100, 50),
			in: Pt(0, 0), want: Pt(100, 50),
		},
		{
			name: "degenerate content passes through",
			fit:  FitContain, align: AlignTopLeft,
			frame: frame, content: RectWH(0, 0),
			in: Pt(7, 9), want: Pt(7, 9),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeAlignment(tt.fit, tt.align, tt.frame, tt.content, tt.scale)
			if got := m.TransformPoint(tt.in); !ptNear(got, tt.want, 1e-9) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestComputeAlignment_InverseMapsSurfaceToContent(t *testing.T) {
	// A 100x100 artboard drawn into a 200x200 surface with FitFill:
	// the surface center maps back to the artboard center.
	m := ComputeAlignment(FitFill, AlignCenter, RectWH(200, 200), RectWH(100, 100), 1)
	got := m.Invert().TransformPoint(Pt(100, 100))
	if want := Pt(50, 50); !ptNear(got, want, 1e-9) {
		t.Errorf("inverse point = %v, want %v", got, want)
	}
}

func TestFit_String(t *testing.T) {
	if got := FitContain.String(); got != "Contain" {
		t.Errorf("FitContain.String() = %q, want %q", got, "Contain")
	}
	if got := Fit(200).String(); got != "Unknown" {
		t.Errorf("Fit(200).String() = %q, want %q", got, "Unknown")
	}
}
