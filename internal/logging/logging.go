// Package logging builds the process logger.
//
// edfix's product is deterministic stdout, so diagnostics go to stderr only
// and default to silence; --verbose switches in a development-style debug
// logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a stderr logger. Without verbose it is a no-op, keeping stdout
// byte-stable for callers that diff it.
func New(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
