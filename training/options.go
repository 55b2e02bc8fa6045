package training

// Option configures a Run invocation. Unset, Run behaves exactly per the
// spec's minimal contract: read patterns, fill, write weight_matrix.txt.
type Option func(*config)

type config struct {
	stats  bool
	logRun bool
}

func defaultConfig() config {
	return config{logRun: true}
}

// WithResourceStats takes a sysstats snapshot before and after the Hebbian
// fill and logs both via the supplied logger (training.Run's log parameter).
func WithResourceStats() Option {
	return func(c *config) { c.stats = true }
}

// WithRunLog enables (the default) or disables appending a run-catalog
// entry under baseDir/runs/runs.db. baseDir is the directory passed to
// Run; when disabled no sqlite handle is ever opened.
func WithRunLog(enabled bool) Option {
	return func(c *config) { c.logRun = enabled }
}
