package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/errors"
)

// ReadJSON decodes a canvas document from r.
//
// The input is either a document object or a bare array of elements. Elements
// are sanitized with [canvas.Sanitize]; the only errors are malformed JSON and
// read failures, both reported with [errors.ErrCodeInvalidFormat].
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*canvas.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read document")
	}

	var in document
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &in.Elements)
	} else {
		err = json.Unmarshal(data, &in)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode document")
	}

	return &canvas.Document{
		Name:        in.Name,
		Version:     in.Version,
		Background:  in.Background,
		Elements:    canvas.Sanitize(in.Elements),
		Width:       in.Width,
		Height:      in.Height,
		Description: in.Description,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}, nil
}

// Unmarshal decodes a document from data. It accepts the same input as
// [ReadJSON].
func Unmarshal(data []byte) (*canvas.Document, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ImportJSON reads the document stored at path. A missing file yields
// [errors.ErrCodeFileNotFound].
func ImportJSON(path string) (*canvas.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
