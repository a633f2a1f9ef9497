package domain

// Fixture is one embedded sample file, used as hand-test input for an editor
// (indentation with Tab/Shift+Tab, syntax highlighting).
type Fixture struct {
	Name     string // short slug, e.g. "indent"
	Language string // e.g. "python"
	Filename string // name the fixture is materialized under
	Purpose  string // one-line description shown by list
	Body     []byte
}

// Clone returns a copy whose Body does not alias the receiver's.
func (f Fixture) Clone() Fixture {
	f.Body = append([]byte(nil), f.Body...)
	return f
}

// Registry serves the fixture corpus compiled into the binary.
type Registry interface {
	All() []Fixture
	Get(name string) (Fixture, bool)
}

// WorkspaceStore materializes fixtures on disk and checks them for drift.
type WorkspaceStore interface {
	WriteFixtures(fixtures []Fixture) (Manifest, error)
	Manifest() (Manifest, bool, error)
	Verify() ([]Check, error)
}
