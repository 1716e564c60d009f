package layout

import "github.com/matzehuels/kanvax/pkg/canvas"

// Layout defaults.
const (
	DefaultGap         = 16.0
	DefaultColumns     = 3
	DefaultBentoWidth  = 800.0
	bentoAspect        = 3.0 / 4.0
	bentoCellsPerRow   = 2
	bentoLargeEveryNth = 3
)

type config struct {
	gap      float64
	columns  int
	start    canvas.Point
	maxWidth float64
}

// Option configures a layout.
type Option func(*config)

// WithGap sets the spacing between cells (default 16). Negative values are
// ignored.
func WithGap(g float64) Option {
	return func(c *config) {
		if g >= 0 {
			c.gap = g
		}
	}
}

// WithColumns sets the column count for masonry and grid (default 3).
// Values below 1 are ignored.
func WithColumns(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.columns = n
		}
	}
}

// WithStart sets the top-left origin of the layout (default (0, 0)).
func WithStart(p canvas.Point) Option {
	return func(c *config) { c.start = p }
}

// WithMaxWidth sets the total width budget. Masonry divides it across columns;
// bento uses it as the unit width.
func WithMaxWidth(w float64) Option {
	return func(c *config) {
		if w > 0 {
			c.maxWidth = w
		}
	}
}

func newConfig(opts []Option) config {
	c := config{gap: DefaultGap, columns: DefaultColumns}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
