package canvas

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Raw is a loosely typed element as decoded from JSON.
type Raw map[string]any

// Sanitize converts loosely typed elements into well-formed ones.
//
//   - Numeric fields accept numbers and numeric strings.
//   - Missing, invalid or non-positive width and height become 100.
//   - Missing rotation becomes 0, opacity 1, scaleX/scaleY 1.
//   - locked is coerced to a bool; visible is true unless explicitly false.
//   - type "frame" yields a frame (any src is dropped); anything else is an
//     image.
//   - Missing or duplicate ids are replaced with a fresh UUID.
func Sanitize(raws []Raw) []Element {
	out := make([]Element, 0, len(raws))
	seen := make(map[string]bool, len(raws))
	for _, r := range raws {
		e := sanitizeOne(r)
		if e.ID == "" || seen[e.ID] {
			e.ID = uuid.NewString()
		}
		seen[e.ID] = true
		if e.Name == "" {
			e.Name = e.ID
		}
		out = append(out, e)
	}
	return out
}

func sanitizeOne(r Raw) Element {
	e := Element{
		ID:       str(r["id"]),
		Name:     str(r["name"]),
		X:        number(r["x"], 0),
		Y:        number(r["y"], 0),
		Width:    positive(r["width"], DefaultSize),
		Height:   positive(r["height"], DefaultSize),
		Rotation: number(r["rotation"], 0),
		Opacity:  number(r["opacity"], DefaultOpacity),
		Locked:   truthy(r["locked"]),
		Visible:  !explicitFalse(r["visible"]),
	}

	if strings.EqualFold(str(r["type"]), string(KindFrame)) {
		e.Kind = KindFrame
		e.Frame = &FrameProps{BackgroundColor: str(r["backgroundColor"])}
		return e
	}

	e.Kind = KindImage
	e.Image = &ImageProps{
		Src:    str(r["src"]),
		ScaleX: number(r["scaleX"], DefaultScale),
		ScaleY: number(r["scaleY"], DefaultScale),
	}
	return e
}

func str(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	}
	return ""
}

// number parses v as a finite float, falling back to def.
func number(v any, def float64) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return def
		}
		f = p
	default:
		return def
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

func positive(v any, def float64) float64 {
	f := number(v, def)
	if f <= 0 {
		return def
	}
	return f
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	case float64:
		return t != 0
	case int:
		return t != 0
	}
	return false
}

func explicitFalse(v any) bool {
	switch t := v.(type) {
	case bool:
		return !t
	case string:
		return strings.EqualFold(strings.TrimSpace(t), "false")
	}
	return false
}
