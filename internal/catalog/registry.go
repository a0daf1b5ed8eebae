package catalog

import (
	"errors"
	"fmt"
)

// GenerationRegistry holds the generation table and provides lookup utilities.
type GenerationRegistry struct {
	generations map[string]*GenerationDef
	all         []GenerationDef
}

// NewGenerationRegistry creates a registry from loaded generation definitions.
func NewGenerationRegistry(generations []GenerationDef) *GenerationRegistry {
	registry := &GenerationRegistry{
		generations: make(map[string]*GenerationDef),
		all:         generations,
	}
	for i := range generations {
		registry.generations[generations[i].Label] = &generations[i]
	}
	return registry
}

// LoadGenerationRegistry loads and validates a registry from the embedded generations.json.
func LoadGenerationRegistry() (*GenerationRegistry, error) {
	generations, err := LoadGenerations()
	if err != nil {
		return nil, err
	}
	if len(generations) == 0 {
		return nil, errors.New("no generations loaded from generations.json")
	}
	registry := NewGenerationRegistry(generations)
	if err := registry.Validate(); err != nil {
		return nil, fmt.Errorf("generations.json: %w", err)
	}
	return registry, nil
}

// MustLoadGenerationRegistry loads a registry, panicking on error.
func MustLoadGenerationRegistry() *GenerationRegistry {
	registry, err := LoadGenerationRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Validate checks that labels are unique and the ranges tile the index space
// contiguously from 1, in table order.
func (r *GenerationRegistry) Validate() error {
	if len(r.generations) != len(r.all) {
		return errors.New("duplicate generation label")
	}
	next := 1
	for _, g := range r.all {
		if g.Start > g.End {
			return fmt.Errorf("generation %s: start %d after end %d", g.Label, g.Start, g.End)
		}
		if g.Start != next {
			return fmt.Errorf("generation %s: expected start %d, got %d", g.Label, next, g.Start)
		}
		next = g.End + 1
	}
	return nil
}

// Lookup returns the generation with the given label.
func (r *GenerationRegistry) Lookup(label string) (*GenerationDef, bool) {
	g, ok := r.generations[label]
	return g, ok
}

// ForIndex returns the generation containing the global index, or nil.
func (r *GenerationRegistry) ForIndex(index int) *GenerationDef {
	for i := range r.all {
		if r.all[i].Contains(index) {
			return &r.all[i]
		}
	}
	return nil
}

// All returns all generation definitions in table order.
func (r *GenerationRegistry) All() []GenerationDef {
	return r.all
}

// LastIndex returns the highest global index covered by the table.
func (r *GenerationRegistry) LastIndex() int {
	if len(r.all) == 0 {
		return 0
	}
	return r.all[len(r.all)-1].End
}
