// Package config loads kanvax settings from a TOML file.
//
// Every field has a default, so a missing file or a partial file is valid.
// The default location is $XDG_CONFIG_HOME/kanvax/kanvax.toml, falling back
// to ~/.config/kanvax/kanvax.toml:
//
//	[layout]
//	gap = 24
//	columns = 4
//
//	[viewport]
//	container_width = 1440
//	container_height = 900
//
//	[snap]
//	active_threshold = 6
//
//	[server]
//	addr = ":9090"
//	rate_limit = 50
//	cors_origins = ["https://app.example.com"]
//
// Each section converts to the functional options of the package it
// configures, so callers pass settings straight through:
//
//	cfg, err := config.Load("")
//	updates := layout.Grid(elems, cfg.Layout.Options()...)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/kanvax/pkg/errors"
	"github.com/matzehuels/kanvax/pkg/layout"
	"github.com/matzehuels/kanvax/pkg/snap"
	"github.com/matzehuels/kanvax/pkg/viewport"
)

const (
	appName  = "kanvax"
	fileName = "kanvax.toml"
)

// Default container size used when a command has no real viewport.
const (
	DefaultContainerWidth  = 1920.0
	DefaultContainerHeight = 1080.0
	DefaultAddr            = ":8080"
	DefaultRateLimit       = 20.0
	DefaultBurst           = 40
)

// Config is the full settings tree.
type Config struct {
	Layout   Layout   `toml:"layout"`
	Viewport Viewport `toml:"viewport"`
	Zoom     Zoom     `toml:"zoom"`
	Snap     Snap     `toml:"snap"`
	Server   Server   `toml:"server"`
}

// Layout holds batch layout settings.
type Layout struct {
	Gap      float64 `toml:"gap"`
	Columns  int     `toml:"columns"`
	MaxWidth float64 `toml:"max_width"`
}

// Viewport holds the container size and fit parameters.
type Viewport struct {
	ContainerWidth  float64 `toml:"container_width"`
	ContainerHeight float64 `toml:"container_height"`
	Padding         float64 `toml:"padding"`
	MinScale        float64 `toml:"min_scale"`
	MaxScale        float64 `toml:"max_scale"`
}

// Zoom holds wheel zoom parameters.
type Zoom struct {
	Sensitivity float64 `toml:"sensitivity"`
	MinScale    float64 `toml:"min_scale"`
	MaxScale    float64 `toml:"max_scale"`
}

// Snap holds snapping distances in canvas units.
type Snap struct {
	FrameThreshold  float64 `toml:"frame_threshold"`
	GuideThreshold  float64 `toml:"guide_threshold"`
	ActiveThreshold float64 `toml:"active_threshold"`
}

// Server holds HTTP server settings.
type Server struct {
	Addr string `toml:"addr"`
	// RateLimit is the sustained requests per second allowed per client.
	// Zero disables rate limiting.
	RateLimit float64 `toml:"rate_limit"`
	Burst     int     `toml:"burst"`
	// CORSOrigins lists allowed browser origins. Empty allows any.
	CORSOrigins []string `toml:"cors_origins"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Layout: Layout{
			Gap:     layout.DefaultGap,
			Columns: layout.DefaultColumns,
		},
		Viewport: Viewport{
			ContainerWidth:  DefaultContainerWidth,
			ContainerHeight: DefaultContainerHeight,
			Padding:         viewport.DefaultFitPadding,
			MinScale:        viewport.DefaultFitMinScale,
			MaxScale:        viewport.DefaultFitMaxScale,
		},
		Zoom: Zoom{
			Sensitivity: viewport.DefaultZoomSensitivity,
			MinScale:    viewport.DefaultZoomMin,
			MaxScale:    viewport.DefaultZoomMax,
		},
		Snap: Snap{
			FrameThreshold:  snap.DefaultFrameThreshold,
			GuideThreshold:  snap.DefaultGuideThreshold,
			ActiveThreshold: snap.DefaultActiveThreshold,
		},
		Server: Server{
			Addr:      DefaultAddr,
			RateLimit: DefaultRateLimit,
			Burst:     DefaultBurst,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads settings from path on top of [Default]. An empty path means
// [DefaultPath], and a missing file there is not an error. A missing file at
// an explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidPath, err, "config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(c.Layout.Gap >= 0, "layout.gap must be >= 0, got %v", c.Layout.Gap)
	check(c.Layout.Columns >= 1, "layout.columns must be >= 1, got %d", c.Layout.Columns)
	check(c.Layout.MaxWidth >= 0, "layout.max_width must be >= 0, got %v", c.Layout.MaxWidth)

	check(c.Viewport.ContainerWidth > 0 && c.Viewport.ContainerHeight > 0,
		"viewport container must be positive, got %vx%v", c.Viewport.ContainerWidth, c.Viewport.ContainerHeight)
	check(c.Viewport.Padding > 0 && c.Viewport.Padding <= 1, "viewport.padding must be in (0, 1], got %v", c.Viewport.Padding)
	check(c.Viewport.MinScale > 0 && c.Viewport.MinScale <= c.Viewport.MaxScale,
		"viewport scale range invalid: %v..%v", c.Viewport.MinScale, c.Viewport.MaxScale)

	check(c.Zoom.Sensitivity > 0, "zoom.sensitivity must be > 0, got %v", c.Zoom.Sensitivity)
	check(c.Zoom.MinScale > 0 && c.Zoom.MinScale <= c.Zoom.MaxScale,
		"zoom scale range invalid: %v..%v", c.Zoom.MinScale, c.Zoom.MaxScale)

	check(c.Snap.FrameThreshold >= 0, "snap.frame_threshold must be >= 0, got %v", c.Snap.FrameThreshold)
	check(c.Snap.ActiveThreshold >= 0 && c.Snap.ActiveThreshold <= c.Snap.GuideThreshold,
		"snap.active_threshold must be in [0, guide_threshold], got %v", c.Snap.ActiveThreshold)

	check(c.Server.Addr != "", "server.addr must not be empty")
	check(c.Server.RateLimit >= 0, "server.rate_limit must be >= 0, got %v", c.Server.RateLimit)
	check(c.Server.RateLimit == 0 || c.Server.Burst >= 1, "server.burst must be >= 1 when rate limiting, got %d", c.Server.Burst)

	if len(problems) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Options converts layout settings to [layout.Option] values.
func (l Layout) Options() []layout.Option {
	opts := []layout.Option{layout.WithGap(l.Gap), layout.WithColumns(l.Columns)}
	if l.MaxWidth > 0 {
		opts = append(opts, layout.WithMaxWidth(l.MaxWidth))
	}
	return opts
}

// FitOptions converts viewport settings to [viewport.FitOption] values.
func (v Viewport) FitOptions() []viewport.FitOption {
	return []viewport.FitOption{
		viewport.WithPadding(v.Padding),
		viewport.WithScaleRange(v.MinScale, v.MaxScale),
	}
}

// Options converts zoom settings to [viewport.ZoomOption] values.
func (z Zoom) Options() []viewport.ZoomOption {
	return []viewport.ZoomOption{
		viewport.WithSensitivity(z.Sensitivity),
		viewport.WithZoomRange(z.MinScale, z.MaxScale),
	}
}

// Options converts snap settings to [snap.Option] values.
func (s Snap) Options() []snap.Option {
	return []snap.Option{
		snap.WithFrameThreshold(s.FrameThreshold),
		snap.WithGuideThreshold(s.GuideThreshold),
		snap.WithActiveThreshold(s.ActiveThreshold),
	}
}
