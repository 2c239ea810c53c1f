// Package check provides the input-validation guards run by an explainer
// before any explanation logic consumes its inputs.
package check

import (
	"log/slog"
	"sync"

	"github.com/glassbox-ml/glassbox/internal/logging"
)

var (
	serviceLogger *slog.Logger
	initOnce      sync.Once
)

// getLogger returns the check package logger scoped to the check service.
// Uses sync.Once to ensure the logger is only initialized once.
func getLogger() *slog.Logger {
	initOnce.Do(func() {
		serviceLogger = logging.ForService("check")
		if serviceLogger == nil {
			serviceLogger = slog.Default().With("service", "check")
		}
	})
	return serviceLogger
}
