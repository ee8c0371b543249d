package fslist

type options struct {
	logger *Logger
	name   string
}

// Option configures Arena and List construction.
type Option func(*options)

// WithLogger configures the logger used for construction, Clear and
// contract-violation reports. Operations on the hot path never log.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithName tags every log line of the container with name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
