package io

import "github.com/matzehuels/kanvax/pkg/canvas"

type document struct {
	Name        string       `json:"name"`
	Version     string       `json:"version,omitempty"`
	Background  string       `json:"background,omitempty"`
	Elements    []canvas.Raw `json:"elements"`
	Width       *float64     `json:"width,omitempty"`
	Height      *float64     `json:"height,omitempty"`
	Description string       `json:"description,omitempty"`
	CreatedAt   string       `json:"created_at,omitempty"`
	UpdatedAt   string       `json:"updated_at,omitempty"`
}

type element struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	Opacity  float64 `json:"opacity"`
	Locked   bool    `json:"locked"`
	Visible  bool    `json:"visible"`

	Src             *string  `json:"src,omitempty"`
	ScaleX          *float64 `json:"scaleX,omitempty"`
	ScaleY          *float64 `json:"scaleY,omitempty"`
	BackgroundColor string   `json:"backgroundColor,omitempty"`
}

type outDocument struct {
	Name        string    `json:"name"`
	Version     string    `json:"version,omitempty"`
	Background  string    `json:"background,omitempty"`
	Elements    []element `json:"elements"`
	Width       *float64  `json:"width,omitempty"`
	Height      *float64  `json:"height,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   string    `json:"created_at,omitempty"`
	UpdatedAt   string    `json:"updated_at,omitempty"`
}

func toWire(e canvas.Element) element {
	w := element{
		ID:       e.ID,
		Name:     e.Name,
		Type:     string(e.Kind),
		X:        e.X,
		Y:        e.Y,
		Width:    e.Width,
		Height:   e.Height,
		Rotation: e.Rotation,
		Opacity:  e.Opacity,
		Locked:   e.Locked,
		Visible:  e.Visible,
	}
	switch {
	case e.Image != nil:
		src, sx, sy := e.Image.Src, e.Image.ScaleX, e.Image.ScaleY
		w.Src, w.ScaleX, w.ScaleY = &src, &sx, &sy
	case e.Frame != nil:
		w.BackgroundColor = e.Frame.BackgroundColor
	}
	return w
}
