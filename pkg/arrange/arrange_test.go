package arrange

import (
	"testing"

	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/errors"
)

func img(id string, x, y, w, h float64) canvas.Element {
	return canvas.NewImage(id, "", x, y, w, h)
}

func TestAlignTooFew(t *testing.T) {
	if got := Align(nil, Left); len(got) != 0 {
		t.Errorf("Align(nil) = %v, want empty", got)
	}
	if got := Align([]canvas.Element{img("a", 1, 2, 3, 4)}, Left); len(got) != 0 {
		t.Errorf("Align(one) = %v, want empty", got)
	}
}

func TestAlign(t *testing.T) {
	elems := []canvas.Element{
		img("a", 10, 0, 100, 50),
		img("b", 50, 200, 20, 100),
		img("c", 0, 80, 40, 40),
	}
	// union box: x 0..110, y 0..300

	tests := []struct {
		mode Mode
		want []canvas.Update
	}{
		{Left, []canvas.Update{{ID: "a", X: 0, Y: 0}, {ID: "b", X: 0, Y: 200}, {ID: "c", X: 0, Y: 80}}},
		{Center, []canvas.Update{{ID: "a", X: 5, Y: 0}, {ID: "b", X: 45, Y: 200}, {ID: "c", X: 35, Y: 80}}},
		{Right, []canvas.Update{{ID: "a", X: 10, Y: 0}, {ID: "b", X: 90, Y: 200}, {ID: "c", X: 70, Y: 80}}},
		{Top, []canvas.Update{{ID: "a", X: 10, Y: 0}, {ID: "b", X: 50, Y: 0}, {ID: "c", X: 0, Y: 0}}},
		{Middle, []canvas.Update{{ID: "a", X: 10, Y: 125}, {ID: "b", X: 50, Y: 100}, {ID: "c", X: 0, Y: 130}}},
		{Bottom, []canvas.Update{{ID: "a", X: 10, Y: 250}, {ID: "b", X: 50, Y: 200}, {ID: "c", X: 0, Y: 260}}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got := Align(elems, tt.mode)
			if len(got) != len(tt.want) {
				t.Fatalf("Align() returned %d updates, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("update %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAlignLeftKeepsY(t *testing.T) {
	elems := []canvas.Element{img("a", 30, 7, 10, 10), img("b", -4, 99, 10, 10), img("c", 12, -3, 10, 10)}
	for i, u := range Align(elems, Left) {
		if u.X != -4 {
			t.Errorf("x = %v, want -4", u.X)
		}
		if u.Y != elems[i].Y {
			t.Errorf("y changed from %v to %v", elems[i].Y, u.Y)
		}
	}
}

func TestAlignUnknownMode(t *testing.T) {
	elems := []canvas.Element{img("a", 0, 0, 1, 1), img("b", 5, 5, 1, 1)}
	if got := Align(elems, Mode("diagonal")); got != nil {
		t.Errorf("Align(unknown) = %v, want nil", got)
	}
}

func TestDistributeHorizontal(t *testing.T) {
	elems := []canvas.Element{
		img("c", 70, 5, 30, 10),
		img("a", 0, 1, 10, 10),
		img("b", 40, 9, 20, 10),
	}
	got := Distribute(elems, Horizontal)
	want := []canvas.Update{{ID: "a", X: 0, Y: 1}, {ID: "b", X: 30, Y: 9}, {ID: "c", X: 70, Y: 5}}
	if len(got) != len(want) {
		t.Fatalf("Distribute() returned %d updates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("update %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if last := got[2].X + 30; last != 100 {
		t.Errorf("last trailing edge = %v, want 100", last)
	}
}

func TestDistributeVerticalEqualGaps(t *testing.T) {
	elems := []canvas.Element{
		img("a", 0, 0, 10, 50),
		img("b", 0, 55, 10, 10),
		img("c", 0, 60, 10, 25),
		img("d", 0, 200, 10, 100),
	}
	got := Distribute(elems, Vertical)
	// span 0..300, sizes 185, gap (300-185)/3
	gap := (300.0 - 185.0) / 3
	heights := map[string]float64{"a": 50, "b": 10, "c": 25, "d": 100}
	for i := 1; i < len(got); i++ {
		prev := got[i-1]
		g := got[i].Y - (prev.Y + heights[prev.ID])
		if diff := g - gap; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("gap between %s and %s = %v, want %v", prev.ID, got[i].ID, g, gap)
		}
		if got[i].X != 0 {
			t.Errorf("x of %s changed to %v", got[i].ID, got[i].X)
		}
	}
}

func TestDistributeTooFew(t *testing.T) {
	elems := []canvas.Element{img("a", 0, 0, 1, 1), img("b", 5, 5, 1, 1)}
	if got := Distribute(elems, Horizontal); len(got) != 0 {
		t.Errorf("Distribute(two) = %v, want empty", got)
	}
}

func TestParse(t *testing.T) {
	if m, err := ParseMode("Center"); err != nil || m != Center {
		t.Errorf("ParseMode(Center) = %v, %v", m, err)
	}
	if _, err := ParseMode("diagonal"); !errors.Is(err, errors.ErrCodeInvalidMode) {
		t.Errorf("ParseMode(diagonal) error = %v", err)
	}
	if a, err := ParseAxis("y"); err != nil || a != Vertical {
		t.Errorf("ParseAxis(y) = %v, %v", a, err)
	}
	if _, err := ParseAxis("z"); err == nil {
		t.Error("ParseAxis(z) should fail")
	}
}
