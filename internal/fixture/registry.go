package fixture

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"edfix/internal/domain"
)

//go:embed fixtures
var content embed.FS

const indexFile = "fixtures/index.yaml"

type indexEntry struct {
	Name     string `yaml:"name"`
	Language string `yaml:"language"`
	Filename string `yaml:"filename"`
	Purpose  string `yaml:"purpose"`
}

// Registry serves the fixtures compiled into the binary.
type Registry struct {
	byName map[string]domain.Fixture
	names  []string
}

// NewRegistry parses the embedded index and attaches fixture bodies. An error
// here means the build itself is malformed.
func NewRegistry() (*Registry, error) {
	raw, err := content.ReadFile(indexFile)
	if err != nil {
		return nil, fmt.Errorf("read fixture index: %w", err)
	}
	var entries []indexEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse fixture index: %w", err)
	}

	r := &Registry{byName: make(map[string]domain.Fixture, len(entries))}
	for _, e := range entries {
		if _, dup := r.byName[e.Name]; dup {
			return nil, fmt.Errorf("fixture %q: duplicate name in index", e.Name)
		}
		body, err := content.ReadFile("fixtures/" + e.Filename)
		if err != nil {
			return nil, fmt.Errorf("fixture %q: %w", e.Name, err)
		}
		r.byName[e.Name] = domain.Fixture{
			Name:     e.Name,
			Language: e.Language,
			Filename: e.Filename,
			Purpose:  e.Purpose,
			Body:     body,
		}
		r.names = append(r.names, e.Name)
	}
	sort.Strings(r.names)
	return r, nil
}

// All returns every fixture in name order.
func (r *Registry) All() []domain.Fixture {
	out := make([]domain.Fixture, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.byName[n].Clone())
	}
	return out
}

// Get returns the named fixture. The returned body is a copy.
func (r *Registry) Get(name string) (domain.Fixture, bool) {
	f, ok := r.byName[name]
	if !ok {
		return domain.Fixture{}, false
	}
	return f.Clone(), true
}
