package packs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Registry maps practice areas to indicator packs. It is populated once at
// startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	packs map[string]IndicatorPack
}

// NewRegistry creates a registry seeded with the built-in packs.
func NewRegistry() *Registry {
	r := &Registry{packs: make(map[string]IndicatorPack)}
	r.packs[PracticeAreaHousingDisrepair] = DefaultHousingDisrepair()
	return r
}

// Get returns the pack for a practice area. A miss is not an error; callers
// fall back to the empty summary.
func (r *Registry) Get(practiceArea string) (IndicatorPack, bool) {
	p, ok := r.packs[practiceArea]
	return p, ok
}

// Register adds or replaces a pack after validating it.
func (r *Registry) Register(p IndicatorPack) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.packs[p.PracticeArea] = p
	return nil
}

// Areas lists the registered practice areas.
func (r *Registry) Areas() []string {
	areas := make([]string, 0, len(r.packs))
	for area := range r.packs {
		areas = append(areas, area)
	}
	return areas
}

// LoadDir loads every *.yaml / *.yml pack file in dir into the registry,
// overriding built-ins with the same practice area. A missing directory is
// fine (built-ins only); a malformed file is a startup error.
func (r *Registry) LoadDir(dir string) error {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading packs dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading pack file %s: %w", path, err)
		}
		var p IndicatorPack
		if err := yaml.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("parsing pack file %s: %w", path, err)
		}
		if err := r.Register(p); err != nil {
			return fmt.Errorf("pack file %s: %w", path, err)
		}
	}
	return nil
}
