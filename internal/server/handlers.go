package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/kanvax/pkg/buildinfo"
	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/errors"
	kio "github.com/matzehuels/kanvax/pkg/io"
	"github.com/matzehuels/kanvax/pkg/pipeline"
	"github.com/matzehuels/kanvax/pkg/resize"
	"github.com/matzehuels/kanvax/pkg/selection"
	"github.com/matzehuels/kanvax/pkg/snap"
	"github.com/matzehuels/kanvax/pkg/viewport"
)

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorBody{Error: errorDetail{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

func statusFor(code errors.Code) int {
	switch {
	case code.Invalid(), code == errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case code.NotFound():
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decode reads a JSON request body into v.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "malformed request body")
	}
	return nil
}

// sanitizeOne turns a single loosely typed element into an Element.
func sanitizeOne(raw canvas.Raw, field string) (canvas.Element, error) {
	if raw == nil {
		return canvas.Element{}, errors.New(errors.ErrCodeInvalidInput, "%s is required", field)
	}
	return canvas.Sanitize([]canvas.Raw{raw})[0], nil
}

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

type runRequest struct {
	Document json.RawMessage  `json:"document"`
	Options  pipeline.Options `json:"options"`
}

type runResponse struct {
	Document json.RawMessage         `json:"document"`
	Updates  []canvas.Update         `json:"updates"`
	Viewport *pipeline.ViewportState `json:"viewport,omitempty"`
	Added    json.RawMessage         `json:"added,omitempty"`
	Stats    pipeline.Stats          `json:"stats"`
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if len(req.Document) == 0 {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "document is required"))
		return
	}
	doc, err := kio.Unmarshal(req.Document)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.runner.Run(r.Context(), doc, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := kio.Marshal(res.Document)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := runResponse{
		Document: out,
		Updates:  res.Updates,
		Viewport: res.Viewport,
		Stats:    res.Stats,
	}
	if resp.Updates == nil {
		resp.Updates = []canvas.Update{}
	}
	if res.Added != nil {
		if resp.Added, err = kio.MarshalElement(*res.Added); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type snapRequest struct {
	Elements []canvas.Raw `json:"elements"`
	ID       string       `json:"id"`
	Rect     canvas.Rect  `json:"rect"`
	// Simple snaps the element center to frame centers only.
	Simple  bool   `json:"simple"`
	Exclude string `json:"exclude"`
}

type snapResponse struct {
	Guides any         `json:"guides"`
	SnapX  *float64    `json:"snapX"`
	SnapY  *float64    `json:"snapY"`
	Rect   canvas.Rect `json:"rect"`
}

func (s *Server) handleSnap(w http.ResponseWriter, r *http.Request) {
	var req snapRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := errors.ValidateElementID(req.ID); err != nil {
		writeError(w, err)
		return
	}
	elems := canvas.Sanitize(req.Elements)
	opts := s.cfg.Snap.Options()

	if req.Simple {
		exclude := req.Exclude
		if exclude == "" {
			exclude = req.ID
		}
		fs := snap.FrameCenters(req.Rect, elems, exclude, opts...)
		guides := fs.Guides
		if guides == nil {
			guides = []snap.Guide{}
		}
		writeJSON(w, http.StatusOK, snapResponse{Guides: guides, SnapX: fs.SnapX, SnapY: fs.SnapY, Rect: fs.Apply(req.Rect)})
		return
	}

	res := snap.Detect(req.ID, req.Rect, elems, opts...)
	guides := res.Guides
	if guides == nil {
		guides = []snap.AlignmentGuide{}
	}
	writeJSON(w, http.StatusOK, snapResponse{Guides: guides, SnapX: res.SnapX, SnapY: res.SnapY, Rect: res.Apply(req.Rect)})
}

type resizeRequest struct {
	Element canvas.Raw `json:"element"`
	Handle  string     `json:"handle"`
	DX      float64    `json:"dx"`
	DY      float64    `json:"dy"`
}

func (req resizeRequest) validate() error {
	return errors.ValidateFinite(map[string]float64{"dx": req.DX, "dy": req.DY})
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	var req resizeRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	el, err := sanitizeOne(req.Element, "element")
	if err != nil {
		writeError(w, err)
		return
	}
	h, err := resize.ParseHandle(req.Handle)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":   el.ID,
		"rect": resize.ForElement(el, h, req.DX, req.DY),
	})
}

type zoomRequest struct {
	Pointer canvas.Point `json:"pointer"`
	Scale   float64      `json:"scale"`
	Pan     canvas.Point `json:"pan"`
	DeltaY  float64      `json:"delta_y"`
	// Factor zooms by a fixed multiplier around Pointer instead of a wheel delta.
	Factor float64 `json:"factor"`
}

func (req zoomRequest) validate() error {
	if err := errors.ValidateScale(req.Scale); err != nil {
		return err
	}
	return errors.ValidateFinite(map[string]float64{
		"pointer.x": req.Pointer.X, "pointer.y": req.Pointer.Y,
		"pan.x": req.Pan.X, "pan.y": req.Pan.Y,
		"delta_y": req.DeltaY, "factor": req.Factor,
	})
}

func (s *Server) handleZoom(w http.ResponseWriter, r *http.Request) {
	var req zoomRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, err)
		return
	}

	opts := s.cfg.Zoom.Options()
	var scale float64
	var pan canvas.Point
	if req.Factor > 0 {
		scale, pan = viewport.ZoomAround(req.Pointer, req.Scale, req.Pan, req.Factor, opts...)
	} else {
		scale, pan = viewport.ZoomToPoint(req.Pointer, req.Scale, req.Pan, req.DeltaY, opts...)
	}
	writeJSON(w, http.StatusOK, pipeline.ViewportState{Scale: scale, Pan: pan})
}

type clipRequest struct {
	Image canvas.Raw   `json:"image"`
	Frame canvas.Raw   `json:"frame"`
	Scale float64      `json:"scale"`
	Pan   canvas.Point `json:"pan"`
}

type clipResponse struct {
	Clip *selection.ClipPath `json:"clip"`
	Path *string             `json:"path"`
}

func (s *Server) handleClip(w http.ResponseWriter, r *http.Request) {
	var req clipRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Scale == 0 {
		req.Scale = 1
	}
	if err := errors.ValidateScale(req.Scale); err != nil {
		writeError(w, err)
		return
	}
	img, err := sanitizeOne(req.Image, "image")
	if err != nil {
		writeError(w, err)
		return
	}
	frame, err := sanitizeOne(req.Frame, "frame")
	if err != nil {
		writeError(w, err)
		return
	}

	var resp clipResponse
	if c := selection.Clip(img, frame, req.Scale, req.Pan); c != nil {
		path := c.String()
		resp.Clip, resp.Path = c, &path
	}
	writeJSON(w, http.StatusOK, resp)
}

type boundsRequest struct {
	Elements        []canvas.Raw `json:"elements"`
	ContainerWidth  float64      `json:"container_width"`
	ContainerHeight float64      `json:"container_height"`
}

type boundsResponse struct {
	Bounds   *viewport.Bounds        `json:"bounds"`
	Viewport *pipeline.ViewportState `json:"viewport"`
}

func (s *Server) handleBounds(w http.ResponseWriter, r *http.Request) {
	var req boundsRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ContainerWidth <= 0 {
		req.ContainerWidth = s.cfg.Viewport.ContainerWidth
	}
	if req.ContainerHeight <= 0 {
		req.ContainerHeight = s.cfg.Viewport.ContainerHeight
	}

	elems := canvas.Sanitize(req.Elements)
	var resp boundsResponse
	if b, ok := viewport.ContentBounds(elems); ok {
		resp.Bounds = &b
	}
	if scale, pan, ok := viewport.FitToContent(elems, req.ContainerWidth, req.ContainerHeight, s.cfg.Viewport.FitOptions()...); ok {
		resp.Viewport = &pipeline.ViewportState{Scale: scale, Pan: pan}
	}
	writeJSON(w, http.StatusOK, resp)
}

type selectRequest struct {
	Elements []canvas.Raw `json:"elements"`
	Rect     canvas.Rect  `json:"rect"`
	Scale    float64      `json:"scale"`
	Pan      canvas.Point `json:"pan"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Scale == 0 {
		req.Scale = 1
	}
	if err := errors.ValidateScale(req.Scale); err != nil {
		writeError(w, err)
		return
	}
	ids := selection.InRect(canvas.Sanitize(req.Elements), req.Rect, req.Scale, req.Pan)
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"ids": ids})
}
