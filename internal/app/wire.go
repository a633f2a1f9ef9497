package app

import (
	"go.uber.org/zap"

	"edfix/internal/domain"
	"edfix/internal/fixture"
	"edfix/internal/store"
)

// Wire bundles the registry and workspace store for the CLI.
type Wire struct {
	Fixtures  domain.Registry
	Workspace domain.WorkspaceStore
	Log       *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	reg, err := fixture.NewRegistry()
	if err != nil {
		return nil, err
	}
	ws := store.NewWorkspace(cfg.Workspace, log)

	return &Wire{
		Fixtures:  reg,
		Workspace: ws,
		Log:       log,
	}, nil
}
