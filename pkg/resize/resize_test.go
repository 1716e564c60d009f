package resize

import (
	"math"
	"testing"

	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/errors"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func rectApprox(a, b canvas.Rect) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Width, b.Width) && approx(a.Height, b.Height)
}

func TestAspectRatio(t *testing.T) {
	start := canvas.Rect{X: 100, Y: 100, Width: 200, Height: 100} // ratio 2

	tests := []struct {
		name   string
		handle Handle
		dx, dy float64
		want   canvas.Rect
	}{
		{"se width dominant", SE, 40, 10, canvas.Rect{X: 100, Y: 100, Width: 240, Height: 120}},
		{"se height dominant", SE, 10, 50, canvas.Rect{X: 100, Y: 100, Width: 300, Height: 150}},
		{"sw keeps right edge", SW, -40, 0, canvas.Rect{X: 60, Y: 100, Width: 240, Height: 120}},
		{"ne keeps bottom edge", NE, 40, 0, canvas.Rect{X: 100, Y: 80, Width: 240, Height: 120}},
		{"nw keeps bottom-right", NW, -40, -5, canvas.Rect{X: 60, Y: 80, Width: 240, Height: 120}},
		{"e recenters y", E, 40, 999, canvas.Rect{X: 100, Y: 90, Width: 240, Height: 120}},
		{"w keeps right edge", W, 20, 0, canvas.Rect{X: 120, Y: 105, Width: 180, Height: 90}},
		{"s recenters x", S, 0, 20, canvas.Rect{X: 80, Y: 100, Width: 240, Height: 120}},
		{"n keeps bottom edge", N, 0, 20, canvas.Rect{X: 120, Y: 120, Width: 160, Height: 80}},
		{"corner tie uses width", SE, 20, -20, canvas.Rect{X: 100, Y: 100, Width: 220, Height: 110}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AspectRatio(start, tt.handle, tt.dx, tt.dy)
			if !rectApprox(got, tt.want) {
				t.Errorf("AspectRatio(%s, %v, %v) = %+v, want %+v", tt.handle, tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestAspectRatioPreservesRatio(t *testing.T) {
	start := canvas.Rect{X: 0, Y: 0, Width: 300, Height: 200}
	deltas := [][2]float64{{0, 0}, {15, -3}, {-80, 40}, {7, 90}, {-500, -500}, {250, 10}}
	for _, h := range Handles {
		for _, d := range deltas {
			got := AspectRatio(start, h, d[0], d[1])
			if !approx(got.Width/got.Height, 1.5) {
				t.Errorf("AspectRatio(%s, %v) ratio = %v, want 1.5", h, d, got.Width/got.Height)
			}
		}
	}
}

func TestAspectRatioFloor(t *testing.T) {
	start := canvas.Rect{X: 0, Y: 0, Width: 200, Height: 100}

	got := AspectRatio(start, E, -1000, 0)
	if got.Width != MinAspectSize || got.Height != MinAspectSize/2 {
		t.Errorf("E floor = %+v, want width %v", got, MinAspectSize)
	}

	got = AspectRatio(start, SE, 0, -1000)
	if got.Height != MinAspectSize || got.Width != MinAspectSize*2 {
		t.Errorf("SE floor = %+v, want height %v", got, MinAspectSize)
	}
}

func TestFree(t *testing.T) {
	start := canvas.Rect{X: 0, Y: 0, Width: 400, Height: 300}

	tests := []struct {
		name   string
		handle Handle
		dx, dy float64
		want   canvas.Rect
	}{
		{"e", E, 50, 999, canvas.Rect{X: 0, Y: 0, Width: 450, Height: 300}},
		{"w", W, 50, 0, canvas.Rect{X: 50, Y: 0, Width: 350, Height: 300}},
		{"n", N, 999, -20, canvas.Rect{X: 0, Y: -20, Width: 400, Height: 320}},
		{"s", S, 0, 10, canvas.Rect{X: 0, Y: 0, Width: 400, Height: 310}},
		{"se", SE, 10, 20, canvas.Rect{X: 0, Y: 0, Width: 410, Height: 320}},
		{"nw", NW, 10, 20, canvas.Rect{X: 10, Y: 20, Width: 390, Height: 280}},
		{"ne", NE, 10, 20, canvas.Rect{X: 0, Y: 20, Width: 410, Height: 280}},
		{"sw", SW, 10, 20, canvas.Rect{X: 10, Y: 0, Width: 390, Height: 320}},
		{"floor width anchored", W, 1000, 0, canvas.Rect{X: 300, Y: 0, Width: 100, Height: 300}},
		{"floor both", SE, -1000, -1000, canvas.Rect{X: 0, Y: 0, Width: 100, Height: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Free(start, tt.handle, tt.dx, tt.dy); got != tt.want {
				t.Errorf("Free(%s, %v, %v) = %+v, want %+v", tt.handle, tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestForElement(t *testing.T) {
	img := canvas.NewImage("i", "", 0, 0, 200, 100)
	if got := ForElement(img, E, 100, 0); got.Height != 150 {
		t.Errorf("image resize should keep ratio, got %+v", got)
	}
	fr := canvas.NewFrame("f", 0, 0, 200, 100)
	if got := ForElement(fr, E, 100, 0); got.Height != 100 || got.Width != 300 {
		t.Errorf("frame resize should be free, got %+v", got)
	}
}

func TestParseHandle(t *testing.T) {
	for _, h := range Handles {
		got, err := ParseHandle(string(h))
		if err != nil || got != h {
			t.Errorf("ParseHandle(%q) = %q, %v", h, got, err)
		}
	}
	if got, err := ParseHandle(" SE "); err != nil || got != SE {
		t.Errorf("ParseHandle(\" SE \") = %q, %v", got, err)
	}
	_, err := ParseHandle("north")
	if !errors.Is(err, errors.ErrCodeInvalidHandle) {
		t.Errorf("ParseHandle(\"north\") error = %v, want %s", err, errors.ErrCodeInvalidHandle)
	}
}
