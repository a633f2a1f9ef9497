package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"edfix/internal/domain"
	"edfix/internal/store"
)

func sampleFixtures() []domain.Fixture {
	return []domain.Fixture{
		{Name: "indent", Filename: "indent.py", Body: []byte("print('hi')\n")},
		{Name: "highlight-rs", Filename: "highlight.rs", Body: []byte("fn main() {}\n")},
	}
}

func TestWriteFixtures_MaterializesAndRecords(t *testing.T) {
	dir := t.TempDir()
	var ws domain.WorkspaceStore = store.NewWorkspace(dir, nil)

	m, err := ws.WriteFixtures(sampleFixtures())
	if err != nil {
		t.Fatalf("write fixtures: %v", err)
	}
	if len(m.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(m.Entries))
	}

	b, err := os.ReadFile(filepath.Join(dir, "indent.py"))
	if err != nil {
		t.Fatalf("read materialized fixture: %v", err)
	}
	if string(b) != "print('hi')\n" {
		t.Fatalf("materialized body mismatch: %q", b)
	}

	got, found, err := ws.Manifest()
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if !found {
		t.Fatal("manifest not found after write")
	}
	if got.Entries[0].Fingerprint == "" || got.Entries[0].Size == 0 {
		t.Fatalf("manifest entry incomplete: %+v", got.Entries[0])
	}
}

func TestManifest_MissingIsNotAnError(t *testing.T) {
	ws := store.NewWorkspace(t.TempDir(), nil)

	_, found, err := ws.Manifest()
	if err != nil {
		t.Fatalf("manifest: %v", err)
	}
	if found {
		t.Fatal("found a manifest in an empty workspace")
	}
}

func TestVerify_CleanWorkspace(t *testing.T) {
	ws := store.NewWorkspace(t.TempDir(), nil)
	if _, err := ws.WriteFixtures(sampleFixtures()); err != nil {
		t.Fatalf("write fixtures: %v", err)
	}

	checks, err := ws.Verify()
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	for _, c := range checks {
		if c.State != domain.CheckOK {
			t.Fatalf("fixture %q: got state %q, want ok", c.Entry.Name, c.State)
		}
	}
}

func TestVerify_DetectsEditAndDelete(t *testing.T) {
	dir := t.TempDir()
	ws := store.NewWorkspace(dir, nil)
	if _, err := ws.WriteFixtures(sampleFixtures()); err != nil {
		t.Fatalf("write fixtures: %v", err)
	}

	// Simulate an indentation session that edited one file and lost another.
	if err := os.WriteFile(filepath.Join(dir, "indent.py"), []byte("    print('hi')\n"), 0o644); err != nil {
		t.Fatalf("edit fixture: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "highlight.rs")); err != nil {
		t.Fatalf("remove fixture: %v", err)
	}

	checks, err := ws.Verify()
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	states := map[string]domain.CheckState{}
	for _, c := range checks {
		states[c.Entry.Name] = c.State
	}
	if states["indent"] != domain.CheckModified {
		t.Fatalf("indent: got %q, want modified", states["indent"])
	}
	if states["highlight-rs"] != domain.CheckMissing {
		t.Fatalf("highlight-rs: got %q, want missing", states["highlight-rs"])
	}
}

func TestVerify_NoManifest(t *testing.T) {
	ws := store.NewWorkspace(t.TempDir(), nil)

	_, err := ws.Verify()
	if !errors.Is(err, store.ErrNoManifest) {
		t.Fatalf("got %v, want ErrNoManifest", err)
	}
}

func TestWriteFixtures_RewriteResetsDrift(t *testing.T) {
	dir := t.TempDir()
	ws := store.NewWorkspace(dir, nil)
	if _, err := ws.WriteFixtures(sampleFixtures()); err != nil {
		t.Fatalf("write fixtures: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "indent.py"), []byte("changed"), 0o644); err != nil {
		t.Fatalf("edit fixture: %v", err)
	}

	if _, err := ws.WriteFixtures(sampleFixtures()); err != nil {
		t.Fatalf("rewrite fixtures: %v", err)
	}
	checks, err := ws.Verify()
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	for _, c := range checks {
		if c.State != domain.CheckOK {
			t.Fatalf("fixture %q still drifted after rewrite", c.Entry.Name)
		}
	}
}
