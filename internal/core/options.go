// Options for configuring Machine instances.
package core

import "log/slog"

// DefaultTapeWords is the tape size used when WithTapeWords is not given.
const DefaultTapeWords = 2

// WithTapeWords fixes the tape capacity to n native words.
// The capacity never changes after construction. n < 1 is raised to 1;
// callers taking sizes from users should range-check them first.
func WithTapeWords(n int) Option {
	return func(m *Machine) {
		m.tapeWords = n
	}
}

// WithLogger configures the Machine with a structured logger.
// Steps are logged at debug level; definition and run outcomes at info.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithObserver registers an Observer notified after every step.
func WithObserver(o Observer) Option {
	return func(m *Machine) {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
}
