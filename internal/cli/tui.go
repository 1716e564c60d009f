package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/kanvax/pkg/animate"
	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/config"
	"github.com/matzehuels/kanvax/pkg/viewport"
)

// Viewer styles
var (
	viewSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	viewFrameStyle    = lipgloss.NewStyle().Foreground(colorGray)
	viewDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// A terminal cell stands for a block of screen space. Cells are about twice
// as tall as they are wide.
const (
	cellWidth  = 8.0
	cellHeight = 16.0

	chromeRows = 3 // title, status and help lines
	panCells   = 4
	zoomStep   = 1.25
	wheelDelta = 100.0

	animFrames   = 24
	animInterval = 16 * time.Millisecond
)

type animTickMsg struct{}

// panAnimation moves the viewport from one pan to another with the spring
// ease of pkg/animate.
type panAnimation struct {
	from, to canvas.Point
	step     int
}

// CanvasModel is the bubbletea model for the interactive canvas viewer.
type CanvasModel struct {
	Doc    *canvas.Document
	Scale  float64
	Pan    canvas.Point
	Cursor int // index into Doc.Elements, -1 for none

	width, height int
	sized         bool
	anim          *panAnimation
	zoomOpts      []viewport.ZoomOption
	fitOpts       []viewport.FitOption
}

// NewCanvasModel creates a viewer for doc using the zoom and fit settings of cfg.
func NewCanvasModel(doc *canvas.Document, cfg config.Config) CanvasModel {
	return CanvasModel{
		Doc:      doc,
		Scale:    1,
		Cursor:   -1,
		width:    80,
		height:   24,
		zoomOpts: cfg.Zoom.Options(),
		fitOpts:  cfg.Viewport.FitOptions(),
	}
}

func (m CanvasModel) Init() tea.Cmd {
	return nil
}

// container is the canvas area in screen units.
func (m CanvasModel) container() (float64, float64) {
	rows := m.height - chromeRows
	if rows < 1 {
		rows = 1
	}
	return float64(m.width) * cellWidth, float64(rows) * cellHeight
}

func (m CanvasModel) center() canvas.Point {
	w, h := m.container()
	return canvas.Pt(w/2, h/2)
}

func (m CanvasModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.sized {
			m.sized = true
			m.fit(false)
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case animTickMsg:
		return m.stepAnimation()
	}
	return m, nil
}

func (m CanvasModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := panCells * cellWidth
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.Pan.Y += panCells * cellHeight
	case "down", "j":
		m.Pan.Y -= panCells * cellHeight
	case "left", "h":
		m.Pan.X += step
	case "right", "l":
		m.Pan.X -= step
	case "+", "=":
		m.Scale, m.Pan = viewport.ZoomAround(m.center(), m.Scale, m.Pan, zoomStep, m.zoomOpts...)
	case "-":
		m.Scale, m.Pan = viewport.ZoomAround(m.center(), m.Scale, m.Pan, 1/zoomStep, m.zoomOpts...)
	case "f":
		cmd := m.fit(true)
		return m, cmd
	case "tab":
		if n := len(m.Doc.Elements); n > 0 {
			m.Cursor = (m.Cursor + 1) % n
		}
	case "shift+tab":
		if n := len(m.Doc.Elements); n > 0 {
			m.Cursor = (m.Cursor - 1 + n) % n
		}
	case "c":
		if m.Cursor >= 0 && m.Cursor < len(m.Doc.Elements) {
			w, h := m.container()
			el := m.Doc.Elements[m.Cursor]
			cmd := m.animateTo(viewport.CenterPosition(el.Rect().Center(), w, h, m.Scale))
			return m, cmd
		}
	}
	return m, nil
}

func (m *CanvasModel) handleMouse(msg tea.MouseMsg) {
	// Row 0 is the title line.
	pointer := canvas.Pt(
		(float64(msg.X)+0.5)*cellWidth,
		(float64(msg.Y-1)+0.5)*cellHeight,
	)
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.Scale, m.Pan = viewport.ZoomToPoint(pointer, m.Scale, m.Pan, -wheelDelta, m.zoomOpts...)
	case msg.Button == tea.MouseButtonWheelDown:
		m.Scale, m.Pan = viewport.ZoomToPoint(pointer, m.Scale, m.Pan, wheelDelta, m.zoomOpts...)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.Cursor = m.elementAt(pointer)
	}
}

// elementAt returns the index of the topmost visible element under the
// screen point p, or -1. The hit box is one terminal cell.
func (m CanvasModel) elementAt(p canvas.Point) int {
	cellBox := canvas.Rect{X: p.X - cellWidth/2, Y: p.Y - cellHeight/2, Width: cellWidth, Height: cellHeight}
	hit := viewport.RectToCanvas(cellBox, m.Scale, m.Pan)
	for i := len(m.Doc.Elements) - 1; i >= 0; i-- {
		e := m.Doc.Elements[i]
		if e.Visible && e.Rect().Intersects(hit) {
			return i
		}
	}
	return -1
}

// fit scales the viewport to the content. With animate set the pan moves
// there over several frames.
func (m *CanvasModel) fit(animated bool) tea.Cmd {
	w, h := m.container()
	scale, pan, ok := viewport.FitToContent(m.Doc.Elements, w, h, m.fitOpts...)
	if !ok {
		return nil
	}
	m.Scale = scale
	if !animated {
		m.Pan = pan
		return nil
	}
	return m.animateTo(pan)
}

func (m *CanvasModel) animateTo(target canvas.Point) tea.Cmd {
	m.anim = &panAnimation{from: m.Pan, to: target}
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(animInterval, func(time.Time) tea.Msg { return animTickMsg{} })
}

func (m CanvasModel) stepAnimation() (tea.Model, tea.Cmd) {
	if m.anim == nil {
		return m, nil
	}
	a := *m.anim
	a.step++
	m.Pan = animate.Interpolate(a.from, a.to, float64(a.step)/animFrames)
	if a.step >= animFrames || animate.Complete(m.Pan, a.to, animate.DefaultThreshold) {
		m.Pan = a.to
		m.anim = nil
		return m, nil
	}
	m.anim = &a
	return m, tick()
}

func (m CanvasModel) View() string {
	var b strings.Builder

	title := documentTitle(m.Doc)
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.renderCanvas())
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(viewDimStyle.Render("←↓↑→ pan  +/- zoom  wheel zoom at pointer  f fit  tab select  c center  q quit"))
	return b.String()
}

func (m CanvasModel) status() string {
	parts := []string{
		"scale " + formatNum(m.Scale),
		"pan " + formatPoint(m.Pan),
	}
	if m.Cursor >= 0 && m.Cursor < len(m.Doc.Elements) {
		e := m.Doc.Elements[m.Cursor]
		parts = append(parts, viewSelectedStyle.Render(fmt.Sprintf("%s %s at %s size %s x %s",
			e.Kind, e.ID, formatPoint(canvas.Pt(e.X, e.Y)), formatNum(e.Width), formatNum(e.Height))))
	}
	return StyleDim.Render(strings.Join(parts, " · "))
}

// cell is one character of the minimap.
type cell struct {
	r     rune
	frame bool
	sel   bool
}

// renderCanvas draws every visible element as a box of terminal cells.
// Later elements are drawn over earlier ones.
func (m CanvasModel) renderCanvas() string {
	rows := m.height - chromeRows
	cols := m.width
	if rows < 1 || cols < 1 {
		return ""
	}
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}

	for i, e := range m.Doc.Elements {
		if !e.Visible {
			continue
		}
		r := viewport.ElementScreenBounds(e, m.Scale, m.Pan)
		x0 := int(math.Floor(r.Left() / cellWidth))
		y0 := int(math.Floor(r.Top() / cellHeight))
		x1 := int(math.Ceil(r.Right()/cellWidth)) - 1
		y1 := int(math.Ceil(r.Bottom()/cellHeight)) - 1
		if x1 < x0 {
			x1 = x0
		}
		if y1 < y0 {
			y1 = y0
		}
		drawBox(grid, x0, y0, x1, y1, e, i == m.Cursor)
	}

	var b strings.Builder
	for _, row := range grid {
		for _, c := range row {
			s := string(c.r)
			switch {
			case c.sel:
				s = viewSelectedStyle.Render(s)
			case c.frame:
				s = viewFrameStyle.Render(s)
			}
			b.WriteString(s)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func drawBox(grid [][]cell, x0, y0, x1, y1 int, e canvas.Element, selected bool) {
	h, v, fill := '-', '|', '·'
	corners := [4]rune{'+', '+', '+', '+'}
	if e.IsFrame() {
		h, v, fill = '─', '│', ' '
		corners = [4]rune{'┌', '┐', '└', '┘'}
	}

	put := func(x, y int, r rune) {
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
			return
		}
		grid[y][x] = cell{r: r, frame: e.IsFrame(), sel: selected}
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r := fill
			switch {
			case x == x0 && y == y0:
				r = corners[0]
			case x == x1 && y == y0:
				r = corners[1]
			case x == x0 && y == y1:
				r = corners[2]
			case x == x1 && y == y1:
				r = corners[3]
			case y == y0 || y == y1:
				r = h
			case x == x0 || x == x1:
				r = v
			}
			if r == ' ' && e.IsFrame() {
				// Frame interiors are left undrawn.
				continue
			}
			put(x, y, r)
		}
	}

	label := []rune(e.Name)
	for i, r := range label {
		x := x0 + 1 + i
		if x >= x1 {
			break
		}
		put(x, y0, r)
	}
}
