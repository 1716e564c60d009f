package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/kanvax/pkg/canvas"
)

// WriteJSON encodes doc as indented JSON and writes it to w. The output can
// be read back with [ReadJSON].
func WriteJSON(doc *canvas.Document, w io.Writer) error {
	out := outDocument{
		Name:        doc.Name,
		Version:     doc.Version,
		Background:  doc.Background,
		Elements:    make([]element, len(doc.Elements)),
		Width:       doc.Width,
		Height:      doc.Height,
		Description: doc.Description,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
	for i, e := range doc.Elements {
		out.Elements[i] = toWire(e)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes doc to a JSON file at path.
func ExportJSON(doc *canvas.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}

// Marshal encodes doc as compact JSON in the same format as [WriteJSON].
func Marshal(doc *canvas.Document) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Compact(&out, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("compact: %w", err)
	}
	return out.Bytes(), nil
}

// MarshalElement encodes a single element in document format.
func MarshalElement(e canvas.Element) (json.RawMessage, error) {
	data, err := json.Marshal(toWire(e))
	if err != nil {
		return nil, fmt.Errorf("encode element %s: %w", e.ID, err)
	}
	return data, nil
}
