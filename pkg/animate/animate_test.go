package animate

import (
	"math"
	"testing"

	"github.com/matzehuels/kanvax/pkg/canvas"
)

func TestEase(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 1},
		{0.5, 1 - math.Exp(-3)*math.Cos(1.5*math.Pi)},
	}
	for _, tt := range tests {
		if got := Ease(tt.p); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Ease(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestEaseOvershoots(t *testing.T) {
	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = math.Max(peak, Ease(float64(i)/100))
	}
	if peak <= 1 {
		t.Errorf("peak ease = %v, want overshoot above 1", peak)
	}
}

func TestInterpolate(t *testing.T) {
	from, to := canvas.Pt(0, 100), canvas.Pt(200, -100)

	if got := Interpolate(from, to, 0); got != from {
		t.Errorf("Interpolate(0) = %v, want %v", got, from)
	}
	if got := Interpolate(from, to, 1); got != to {
		t.Errorf("Interpolate(1) = %v, want %v", got, to)
	}

	mid := Interpolate(from, to, 0.25)
	e := Ease(0.25)
	if math.Abs(mid.X-200*e) > 1e-9 || math.Abs(mid.Y-(100-200*e)) > 1e-9 {
		t.Errorf("Interpolate(0.25) = %v, want eased %v", mid, e)
	}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name      string
		cur, tgt  canvas.Point
		threshold float64
		want      bool
	}{
		{"same point", canvas.Pt(1, 1), canvas.Pt(1, 1), 0.5, true},
		{"within default", canvas.Pt(0, 0), canvas.Pt(0.4, -0.4), 0, true},
		{"one axis far", canvas.Pt(0, 0), canvas.Pt(0.4, 0.6), 0.5, false},
		{"exactly threshold", canvas.Pt(0, 0), canvas.Pt(0.5, 0), 0.5, false},
		{"custom threshold", canvas.Pt(0, 0), canvas.Pt(3, 3), 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Complete(tt.cur, tt.tgt, tt.threshold); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrames(t *testing.T) {
	to := canvas.Pt(10, 20)
	frames := Frames(canvas.Point{}, to, 5)
	if len(frames) != 5 {
		t.Fatalf("len(Frames()) = %d, want 5", len(frames))
	}
	if frames[4] != to {
		t.Errorf("last frame = %v, want %v", frames[4], to)
	}
	if Frames(canvas.Point{}, to, 0) != nil {
		t.Error("Frames(n=0) should be nil")
	}
}
