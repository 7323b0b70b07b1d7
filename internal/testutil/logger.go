package testutil

import (
	"github.com/hostora/hostora/internal/logger"
	"go.uber.org/zap"
)

// GetLogger returns a logger that discards all output
func GetLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}
