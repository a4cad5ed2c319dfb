package prompt

import "go.uber.org/zap"

// Option configures a Collector.
type Option func(*Collector)

// WithDriver overrides the prompt driver.
func WithDriver(driver Driver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithAdvanced controls whether advanced fields are prompted. Skipped fields
// keep their current value.
func WithAdvanced(enabled bool) Option {
	return func(c *Collector) {
		c.advanced = enabled
	}
}

// WithLogger sets the logger used for skipped-field diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}
