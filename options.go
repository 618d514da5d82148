package tapir

import "log/slog"

// Option configures a Machine at construction time.
type Option func(*Machine)

// WithLogger attaches a structured logger for step-level tracing. Machines
// are silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}
