package index

import "github.com/hupe1980/indexed"

// Option configures a leaf index.
type Option func(*config)

type config struct {
	mkSet indexed.KeySetFactory
}

func newConfig(opts []Option) config {
	c := config{mkSet: indexed.NewKeySet}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithKeySet selects the KeySet backing used for the per-value key sets.
// The default is the map-backed set; indexed.NewBitmapKeySet trades a
// little per-op cost for compact storage of dense key populations.
func WithKeySet(f indexed.KeySetFactory) Option {
	return func(c *config) {
		c.mkSet = f
	}
}
