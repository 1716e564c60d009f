package snap

// Default thresholds in canvas units.
const (
	DefaultFrameThreshold  = 12.0
	DefaultGuideThreshold  = 24.0
	DefaultActiveThreshold = 8.0
)

type config struct {
	frameThreshold  float64
	guideThreshold  float64
	activeThreshold float64
	equalSpacing    bool
}

// Option configures [FrameCenters] and [Detect].
type Option func(*config)

// WithFrameThreshold sets the distance under which [FrameCenters] snaps to a
// frame center (default 12).
func WithFrameThreshold(d float64) Option {
	return func(c *config) { c.frameThreshold = d }
}

// WithGuideThreshold sets the distance under which [Detect] emits a guide
// (default 24).
func WithGuideThreshold(d float64) Option {
	return func(c *config) { c.guideThreshold = d }
}

// WithActiveThreshold sets the distance under which a guide is active and
// may snap (default 8).
func WithActiveThreshold(d float64) Option {
	return func(c *config) { c.activeThreshold = d }
}

// WithEqualSpacing toggles equal-spacing guides (default on).
func WithEqualSpacing(on bool) Option {
	return func(c *config) { c.equalSpacing = on }
}

func newConfig(opts []Option) config {
	c := config{
		frameThreshold:  DefaultFrameThreshold,
		guideThreshold:  DefaultGuideThreshold,
		activeThreshold: DefaultActiveThreshold,
		equalSpacing:    true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
