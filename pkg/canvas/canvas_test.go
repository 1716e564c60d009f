package canvas

import (
	"testing"

	"github.com/matzehuels/kanvax/pkg/errors"
)

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"left", r.Left(), 10},
		{"right", r.Right(), 110},
		{"top", r.Top(), 20},
		{"bottom", r.Bottom(), 70},
		{"centerX", r.CenterX(), 60},
		{"centerY", r.CenterY(), 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 50, Y: 50, Width: 100, Height: 100}, true},
		{"inside", Rect{X: 10, Y: 10, Width: 10, Height: 10}, true},
		{"touching edge", Rect{X: 100, Y: 0, Width: 50, Height: 50}, false},
		{"apart", Rect{X: 200, Y: 200, Width: 10, Height: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectNormalize(t *testing.T) {
	got := Rect{X: 100, Y: 50, Width: -60, Height: -20}.Normalize()
	want := Rect{X: 40, Y: 30, Width: 60, Height: 20}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}

func TestNewElements(t *testing.T) {
	img := NewImage("a", "cat.png", 1, 2, 3, 4)
	if !img.IsImage() || img.IsFrame() {
		t.Fatalf("NewImage kind = %v", img.Kind)
	}
	if img.Image.ScaleX != 1 || img.Image.ScaleY != 1 || img.Opacity != 1 || !img.Visible {
		t.Errorf("NewImage defaults not applied: %+v %+v", img, *img.Image)
	}

	fr := NewFrame("f", 0, 0, 10, 10)
	if !fr.IsFrame() || fr.Src() != "" || fr.Image != nil {
		t.Errorf("NewFrame should not carry an image payload: %+v", fr)
	}
}

func TestDocumentApply(t *testing.T) {
	doc := &Document{Elements: []Element{
		NewImage("a", "", 0, 0, 10, 10),
		NewImage("b", "", 20, 0, 10, 10),
	}}

	out, err := doc.Apply([]Update{{ID: "b", X: 5, Y: 6}})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if b, _ := out.Element("b"); b.X != 5 || b.Y != 6 {
		t.Errorf("updated b = (%v,%v), want (5,6)", b.X, b.Y)
	}
	if b, _ := doc.Element("b"); b.X != 20 {
		t.Errorf("Apply mutated the input document: b.X = %v", b.X)
	}
}

func TestDocumentApplyUnknownIsAtomic(t *testing.T) {
	doc := &Document{Elements: []Element{NewImage("a", "", 0, 0, 10, 10)}}

	out, err := doc.Apply([]Update{{ID: "a", X: 1}, {ID: "missing", X: 2}})
	if err == nil {
		t.Fatal("Apply() error = nil, want error")
	}
	if out != nil {
		t.Error("Apply() should not return a document on error")
	}
	if !errors.Is(err, errors.ErrCodeElementNotFound) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeElementNotFound)
	}
}

func TestDocumentResize(t *testing.T) {
	doc := &Document{Elements: []Element{NewFrame("f", 0, 0, 100, 100)}}
	out, err := doc.Resize("f", Rect{X: -10, Y: -10, Width: 120, Height: 130})
	if err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	f, _ := out.Element("f")
	if f.Rect() != (Rect{X: -10, Y: -10, Width: 120, Height: 130}) {
		t.Errorf("Resize() rect = %+v", f.Rect())
	}
}

func TestDocumentSelect(t *testing.T) {
	doc := &Document{Elements: []Element{
		NewImage("a", "", 0, 0, 1, 1),
		NewImage("b", "", 0, 0, 1, 1),
		NewImage("c", "", 0, 0, 1, 1),
	}}

	got, err := doc.Select([]string{"c", "a"})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("Select() = %v, want [a c] in document order", got)
	}

	all, _ := doc.Select(nil)
	if len(all) != 3 {
		t.Errorf("Select(nil) returned %d elements, want 3", len(all))
	}

	if _, err := doc.Select([]string{"zzz"}); err == nil {
		t.Error("Select() with unknown id should fail")
	}
}

func TestDocumentSelectReportsFirstUnknownID(t *testing.T) {
	doc := &Document{Elements: []Element{NewImage("a", "", 0, 0, 1, 1)}}
	ids := []string{"a", "m1", "m2", "m3", "m4", "m5", "m6", "m7", "m8"}

	// Map iteration order would make the reported id vary between runs.
	for i := 0; i < 20; i++ {
		_, err := doc.Select(ids)
		if want := `unknown element "m1"`; err == nil || errors.UserMessage(err) != want {
			t.Fatalf("Select() error = %v, want %s", err, want)
		}
	}
}
