package app

import "go.uber.org/zap"

// Config holds runtime wiring options for building the app.
type Config struct {
	Workspace string      // fixture directory, e.g. $HOME/.edfix
	Logger    *zap.Logger // optional; defaults to a no-op logger
}
