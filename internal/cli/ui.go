package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/pipeline"
)

// statusOut receives human-readable status lines. Documents written to
// stdout never go through it.
var statusOut io.Writer = os.Stdout

// Palette
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

func emit(s string) {
	fmt.Fprintln(statusOut, s)
}

// printStatus prints one icon-prefixed status line.
func printStatus(icon string, style lipgloss.Style, format string, args ...any) {
	emit(style.Render(icon) + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) {
	printStatus(iconSuccess, StyleSuccess, format, args...)
}

func printError(format string, args ...any) {
	printStatus(iconError, styleIconError, format, args...)
}

func printWarning(format string, args ...any) {
	emit(StyleWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus(iconInfo, styleIconInfo, format, args...)
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	emit("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	emit("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	emit(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printViewport prints a scale/pan pair as two key-value lines.
func printViewport(scale float64, pan canvas.Point) {
	printKeyValue("scale", formatNum(scale))
	printKeyValue("pan", formatPoint(pan))
}

// printStats prints a one-line summary of a pipeline run.
func printStats(stats pipeline.Stats) {
	printDimParts(
		fmt.Sprintf("%d elements", stats.Elements),
		fmt.Sprintf("%d selected", stats.Selected),
		fmt.Sprintf("%d moved", stats.Updated),
		stats.Duration.Round(time.Microsecond).String(),
	)
}

// printRenderStats prints preview statistics; cached renders are marked green.
func printRenderStats(elements int, cached bool) {
	status := StyleDim.Render("fresh")
	if cached {
		status = StyleSuccess.Render("cached")
	}
	printDimParts(fmt.Sprintf("%d elements", elements), status)
}

func printDimParts(parts ...string) {
	for i, p := range parts {
		parts[i] = StyleDim.Render(p)
	}
	emit("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

func printNextStep(description, cmd string) {
	emit(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	emit("")
}

// formatNum prints a coordinate rounded to four decimals without trailing
// zeros.
func formatNum(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}

func formatPoint(p canvas.Point) string {
	return formatNum(p.X) + ", " + formatNum(p.Y)
}

func formatSize(w, h float64) string {
	return formatNum(w) + " x " + formatNum(h)
}
