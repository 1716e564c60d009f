package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kanvax/pkg/cache"
	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/config"
	"github.com/matzehuels/kanvax/pkg/errors"
	kio "github.com/matzehuels/kanvax/pkg/io"
	"github.com/matzehuels/kanvax/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "kanvax"

	// stdio is the path meaning stdin for input and stdout for output.
	stdio = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger and built-in settings.
// The config file is loaded when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the config file selected by --config.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if path := c.configPath; path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	return nil
}

// =============================================================================
// Runner
// =============================================================================

// runOp runs one pipeline operation over the document at input and writes
// the result. Output "" derives <input>.<op>.json; "-" writes to stdout and
// suppresses the summary.
func (c *CLI) runOp(ctx context.Context, input, output string, opts pipeline.Options) error {
	doc, err := readDocument(input)
	if err != nil {
		return err
	}

	ctx = withOp(ctx, opts.Op)
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	runner := pipeline.NewRunner(c.cfg, logger)
	res, err := runner.Run(ctx, doc, opts)
	if err != nil {
		return err
	}

	path := outputPath(input, output, opts.Op)
	if err := writeDocument(res.Document, path); err != nil {
		return err
	}
	if path == stdio {
		return nil
	}

	printSuccess("%s complete", strings.ToUpper(opts.Op[:1])+opts.Op[1:])
	printFile(path)
	printStats(res.Stats)
	if res.Added != nil {
		printKeyValue("added", res.Added.ID)
	}
	printNewline()
	printNextStep("Preview", appName+" preview "+path)
	return nil
}

// newCache returns the preview cache, or a null cache when disabled or when
// no cache directory is available.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cache.Dir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Documents
// =============================================================================

func readDocument(path string) (*canvas.Document, error) {
	if path == stdio {
		return kio.ReadJSON(os.Stdin)
	}
	return kio.ImportJSON(path)
}

func writeDocument(doc *canvas.Document, path string) error {
	if path == stdio {
		return kio.WriteJSON(doc, os.Stdout)
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	return kio.ExportJSON(doc, path)
}

// outputPath picks where a command writes its document.
func outputPath(input, output, suffix string) string {
	if output != "" {
		return output
	}
	if input == stdio {
		return stdio
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + suffix + ".json"
}

// =============================================================================
// Flag Parsing
// =============================================================================

// parsePoint parses "x,y".
func parsePoint(s string) (canvas.Point, error) {
	x, y, err := parsePair(s, ",")
	if err != nil {
		return canvas.Point{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "point %q (want x,y)", s)
	}
	return canvas.Pt(x, y), nil
}

// parseSize parses "WxH" with both sides positive.
func parseSize(s string) (w, h float64, err error) {
	w, h, err = parsePair(strings.ToLower(s), "x")
	if err == nil && (w <= 0 || h <= 0) {
		err = fmt.Errorf("sides must be positive")
	}
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "size %q (want WxH)", s)
	}
	return w, h, nil
}

// parsePair parses two finite numbers separated by sep.
func parsePair(s, sep string) (float64, float64, error) {
	a, b, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, fmt.Errorf("missing %q", sep)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, err
	}
	if err := errors.ValidateFinite(map[string]float64{"x": x, "y": y}); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// parseIDs splits a comma-separated id list, dropping blanks.
func parseIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
