package canvas

// Kind discriminates the element variants.
type Kind string

const (
	KindImage Kind = "image"
	KindFrame Kind = "frame"
)

// Default values applied to new and sanitized elements.
const (
	DefaultSize    = 100.0
	DefaultOpacity = 1.0
	DefaultScale   = 1.0
)

// ImageProps holds the fields only image elements have.
type ImageProps struct {
	Src    string  `json:"src"`
	ScaleX float64 `json:"scaleX"`
	ScaleY float64 `json:"scaleY"`
}

// FrameProps holds the fields only frame elements have.
type FrameProps struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// Element is a positioned item on the canvas. Exactly one of Image and Frame
// is set, matching Kind.
type Element struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Kind     Kind    `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	Opacity  float64 `json:"opacity"`
	Locked   bool    `json:"locked"`
	Visible  bool    `json:"visible"`

	Image *ImageProps `json:"-"`
	Frame *FrameProps `json:"-"`
}

// NewImage returns an image element with default rotation, opacity,
// visibility and scale.
func NewImage(id, src string, x, y, w, h float64) Element {
	return Element{
		ID:      id,
		Name:    id,
		Kind:    KindImage,
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
		Opacity: DefaultOpacity,
		Visible: true,
		Image:   &ImageProps{Src: src, ScaleX: DefaultScale, ScaleY: DefaultScale},
	}
}

// NewFrame returns a frame element with default rotation, opacity and
// visibility.
func NewFrame(id string, x, y, w, h float64) Element {
	return Element{
		ID:      id,
		Name:    id,
		Kind:    KindFrame,
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
		Opacity: DefaultOpacity,
		Visible: true,
		Frame:   &FrameProps{},
	}
}

// IsFrame reports whether e is a frame.
func (e Element) IsFrame() bool { return e.Kind == KindFrame }

// IsImage reports whether e is an image.
func (e Element) IsImage() bool { return e.Kind == KindImage }

// Rect returns the canvas-space bounds of e.
func (e Element) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Src returns the image source, or "" for frames.
func (e Element) Src() string {
	if e.Image == nil {
		return ""
	}
	return e.Image.Src
}

// Clone returns a deep copy of e, so the variant payload is not shared.
func (e Element) Clone() Element {
	if e.Image != nil {
		img := *e.Image
		e.Image = &img
	}
	if e.Frame != nil {
		fr := *e.Frame
		e.Frame = &fr
	}
	return e
}

// Frames returns the frame elements of elems in order.
func Frames(elems []Element) []Element {
	var out []Element
	for _, e := range elems {
		if e.IsFrame() {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the element with the given id.
func Find(elems []Element, id string) (Element, bool) {
	for _, e := range elems {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}
