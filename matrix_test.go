package motion

import (
	"math"
	"testing"
)

func matNear(a, b Matrix, eps float64) bool {
	return math.Abs(a.A-b.A) < eps && math.Abs(a.B-b.B) < eps &&
		math.Abs(a.C-b.C) < eps && math.Abs(a.D-b.D) < eps &&
		math.Abs(a.E-b.E) < eps && math.Abs(a.F-b.F) < eps
}

func ptNear(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestMatrix_Multiply(t *testing.T) {
	// Translate then scale: the left operand applies last.
	m := Scale(2, 2).Multiply(Translate(5, -3))
	got := m.TransformPoint(Pt(1, 1))
	want := Pt(12, -4)
	if !ptNear(got, want, 1e-9) {
		t.Errorf("TransformPoint() = %v, want %v", got, want)
	}
}

func TestMatrix_Invert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(10, -4)},
		{"scale", Scale(2, 0.5)},
		{"rotate", Rotate(math.Pi / 3)},
		{"composite", Translate(3, 7).Multiply(Scale(2, 4)).Multiply(Rotate(1.2))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.m.Invert()
			if got := tt.m.Multiply(inv); !matNear(got, Identity(), 1e-9) {
				t.Errorf("m * m^-1 = %+v, want identity", got)
			}
			p := Pt(3.5, -1.25)
			if got := inv.TransformPoint(tt.m.TransformPoint(p)); !ptNear(got, p, 1e-9) {
				t.Errorf("roundtrip = %v, want %v", got, p)
			}
		})
	}
}

func TestMatrix_Invert_Singular(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"zero", Matrix{}},
		{"zero x scale", Scale(0, 1)},
		{"zero y scale", Scale(1, 0)},
		{"collapsed", Matrix{A: 2, B: 4, C: 1, D: 1, E: 2, F: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A singular matrix inverts to the identity so coordinates
			// pass through unchanged.
			if got := tt.m.Invert(); !got.IsIdentity() {
				t.Errorf("Invert() = %+v, want identity", got)
			}
		})
	}
}

func TestMatrix_Determinant(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1},
		{"scale", Scale(2, 3), 6},
		{"rotate", Rotate(math.Pi / 4), 1},
		{"singular", Scale(0, 5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Determinant(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Determinant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrix_IsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1, 0).IsIdentity() = true")
	}
}
