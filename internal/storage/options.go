package storage

import (
	"go.uber.org/zap"
)

type Option func(*Manager)

func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithSyncOnWrite makes every page write fsync the file before returning.
func WithSyncOnWrite(enabled bool) Option {
	return func(m *Manager) {
		m.syncOnWrite = enabled
	}
}
