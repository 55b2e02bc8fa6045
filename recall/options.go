package recall

// Option configures a Session's corruption defaults. The reference
// revisions disagreed on the exact noise probability (0.08 vs 0.10) and
// cut rectangle across source revisions (spec §9 Open Question); this
// implementation resolves that by exposing both as configuration with the
// §4.4 defaults, never hard-coded.
type Option func(*config)

type config struct {
	width, height                              int
	noiseProbability                           float64
	cutFromRow, cutToRow, cutFromCol, cutToCol int
	logRun                                      bool
}

func defaultConfig() config {
	return config{
		width:            64,
		height:           64,
		noiseProbability: 0.08,
		cutFromRow:       34,
		cutToRow:         58,
		cutFromCol:       11,
		cutToCol:         35,
		logRun:           true,
	}
}

// WithGridSize overrides the 64x64 default two-dimensional interpretation
// used to build the cut rectangle and render rasters. N must equal w*h.
func WithGridSize(w, h int) Option {
	return func(c *config) { c.width, c.height = w, h }
}

// WithNoiseProbability overrides the default add_noise probability (0.08).
func WithNoiseProbability(p float64) Option {
	return func(c *config) { c.noiseProbability = p }
}

// WithCutRegion overrides the default occlusion rectangle
// (rows [34,58], cols [11,35] on the 64x64 grid).
func WithCutRegion(fromRow, toRow, fromCol, toCol int) Option {
	return func(c *config) {
		c.cutFromRow, c.cutToRow = fromRow, toRow
		c.cutFromCol, c.cutToCol = fromCol, toCol
	}
}

// WithRunLog enables (default) or disables the ambient run-catalog entry.
func WithRunLog(enabled bool) Option {
	return func(c *config) { c.logRun = enabled }
}
