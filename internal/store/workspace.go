package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"edfix/internal/domain"
	"edfix/internal/fixture"
)

const manifestFile = "manifest.json"

// ErrNoManifest is returned by Verify when nothing was ever written.
var ErrNoManifest = errors.New("workspace has no manifest (run write first)")

// Workspace materializes fixtures in a directory for an editor to open.
type Workspace struct {
	dir string
	log *zap.Logger
	mu  sync.Mutex
}

func NewWorkspace(dir string, log *zap.Logger) *Workspace {
	if log == nil {
		log = zap.NewNop()
	}
	return &Workspace{dir: dir, log: log}
}

// Dir returns the workspace directory.
func (w *Workspace) Dir() string { return w.dir }

// WriteFixtures writes each fixture body into the workspace and records the
// set in manifest.json. The manifest reflects the last write only.
func (w *Workspace) WriteFixtures(fixtures []domain.Fixture) (domain.Manifest, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return domain.Manifest{}, err
	}

	m := domain.Manifest{WrittenAt: time.Now().UTC()}
	for _, f := range fixtures {
		path := filepath.Join(w.dir, f.Filename)
		if err := writeFile(path, f.Body, 0o644); err != nil {
			return domain.Manifest{}, fmt.Errorf("write fixture %q: %w", f.Name, err)
		}
		w.log.Debug("fixture written",
			zap.String("name", f.Name),
			zap.String("path", path),
			zap.Int("bytes", len(f.Body)))
		m.Entries = append(m.Entries, domain.Entry{
			Name:        f.Name,
			Filename:    f.Filename,
			Fingerprint: fixture.Fingerprint(f.Body),
			Size:        int64(len(f.Body)),
		})
	}

	if err := writeJSON(filepath.Join(w.dir, manifestFile), m, 0o644); err != nil {
		return domain.Manifest{}, fmt.Errorf("write manifest: %w", err)
	}
	return m, nil
}

// Manifest loads manifest.json. A missing manifest is not an error.
func (w *Workspace) Manifest() (domain.Manifest, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.manifestLocked()
}

func (w *Workspace) manifestLocked() (domain.Manifest, bool, error) {
	var m domain.Manifest
	found, err := readJSON(filepath.Join(w.dir, manifestFile), &m)
	if err != nil {
		return domain.Manifest{}, false, err
	}
	return m, found, nil
}

// Verify recomputes fingerprints for every manifest entry and classifies each
// file as ok, modified, or missing.
func (w *Workspace) Verify() ([]domain.Check, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	m, found, err := w.manifestLocked()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoManifest
	}

	checks := make([]domain.Check, 0, len(m.Entries))
	for _, e := range m.Entries {
		b, err := readFile(filepath.Join(w.dir, e.Filename))
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", e.Filename, err)
		}
		state := domain.CheckOK
		switch {
		case b == nil:
			state = domain.CheckMissing
		case fixture.Fingerprint(b) != e.Fingerprint:
			state = domain.CheckModified
		}
		w.log.Debug("fixture checked", zap.String("name", e.Name), zap.String("state", string(state)))
		checks = append(checks, domain.Check{Entry: e, State: state})
	}
	return checks, nil
}
