package worker

// WithEnv sets environment overrides for the worker process.
func WithEnv(env map[string]string) Option {
	return func(d *Dispatcher) {
		d.env = env
	}
}
