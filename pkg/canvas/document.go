package canvas

import (
	"github.com/matzehuels/kanvax/pkg/errors"
)

// Document is a canvas document. Elements are kept in paint order.
type Document struct {
	Name        string
	Version     string
	Background  string
	Elements    []Element
	Width       *float64 // nil for an infinite canvas
	Height      *float64 // nil for an infinite canvas
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// Infinite reports whether the document has no explicit size.
func (d *Document) Infinite() bool {
	return d.Width == nil || d.Height == nil
}

// Element returns the element with the given id.
func (d *Document) Element(id string) (Element, bool) {
	return Find(d.Elements, id)
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	out := *d
	out.Elements = make([]Element, len(d.Elements))
	for i, e := range d.Elements {
		out.Elements[i] = e.Clone()
	}
	if d.Width != nil {
		w := *d.Width
		out.Width = &w
	}
	if d.Height != nil {
		h := *d.Height
		out.Height = &h
	}
	return &out
}

// Apply returns a copy of d with the position updates applied. Updates are
// applied in order, so a later update for the same id wins. If any update
// references an unknown id, Apply returns an error and no document.
func (d *Document) Apply(updates []Update) (*Document, error) {
	index := d.index()
	for _, u := range updates {
		if _, ok := index[u.ID]; !ok {
			return nil, errors.ElementNotFound("element", u.ID)
		}
	}

	out := d.Clone()
	for _, u := range updates {
		i := index[u.ID]
		out.Elements[i].X = u.X
		out.Elements[i].Y = u.Y
	}
	return out, nil
}

// Resize returns a copy of d with the element's bounds replaced by r.
func (d *Document) Resize(id string, r Rect) (*Document, error) {
	i, ok := d.index()[id]
	if !ok {
		return nil, errors.ElementNotFound("element", id)
	}
	out := d.Clone()
	e := &out.Elements[i]
	e.X, e.Y, e.Width, e.Height = r.X, r.Y, r.Width, r.Height
	return out, nil
}

// Select returns the elements whose ids are listed, in document order.
// The first unknown id, in the order given, is reported as an error.
func (d *Document) Select(ids []string) ([]Element, error) {
	if len(ids) == 0 {
		return append([]Element(nil), d.Elements...), nil
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	index := d.index()
	for _, id := range ids {
		if _, ok := index[id]; !ok {
			return nil, errors.ElementNotFound("element", id)
		}
	}
	var out []Element
	for _, e := range d.Elements {
		if want[e.ID] {
			out = append(out, e)
		}
	}
	return out, nil
}

func (d *Document) index() map[string]int {
	m := make(map[string]int, len(d.Elements))
	for i, e := range d.Elements {
		m[e.ID] = i
	}
	return m
}
