package indexed

// Option configures a Collection.
type Option[In any] func(*options[In])

type options[In any] struct {
	store  Store[In]
	logger *Logger
}

// WithStore sets the record store backing. The default is the map-backed
// store; im.NewStore enables O(1) shallow cloning.
func WithStore[In any](store Store[In]) Option[In] {
	return func(o *options[In]) {
		o.store = store
	}
}

// WithLogger sets the logger used for debug-level mutation tracing.
// The default discards all output.
func WithLogger[In any](logger *Logger) Option[In] {
	return func(o *options[In]) {
		o.logger = logger
	}
}
