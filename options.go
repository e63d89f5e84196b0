package anchor

// ErrorHandler receives the failure cause of a check instead of it being
// returned to the caller.
type ErrorHandler func(err error)

// CheckOption configures a single check.
type CheckOption func(*checkConfig)

type checkConfig struct {
	param    any
	hasParam bool
	onError  ErrorHandler
}

func newCheckConfig(opts []CheckOption) checkConfig {
	var cfg checkConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithParam supplies the second argument of rules that take one, such as
// the version for uuid or the comparison date for after and before.
func WithParam(param any) CheckOption {
	return func(c *checkConfig) {
		c.param = param
		c.hasParam = true
	}
}

// OnError routes validation failures to fn. A nil fn is ignored.
//
// Only validation mismatches reach the handler. Unknown rules and
// unsupported entities are always returned as errors.
func OnError(fn ErrorHandler) CheckOption {
	return func(c *checkConfig) {
		if fn != nil {
			c.onError = fn
		}
	}
}
