// Package logging hands out scoped pion loggers for the yuvio packages.
package logging

import (
	"sync"

	"github.com/pion/logging"
)

var (
	mu            sync.RWMutex
	loggerFactory logging.LoggerFactory = logging.NewDefaultLoggerFactory()
)

// NewLogger returns a leveled logger for scope. Levels are controlled through
// the PION_LOG_* environment variables of the default factory.
func NewLogger(scope string) logging.LeveledLogger {
	mu.RLock()
	defer mu.RUnlock()
	return loggerFactory.NewLogger(scope)
}

// SetLoggerFactory replaces the factory used by subsequent NewLogger calls.
// Loggers created before the call keep their original factory.
func SetLoggerFactory(f logging.LoggerFactory) {
	if f == nil {
		f = logging.NewDefaultLoggerFactory()
	}
	mu.Lock()
	loggerFactory = f
	mu.Unlock()
}
