package config

import (
	"fmt"
	"sort"
)

// Library is a named collection of pattern texts.
type Library struct {
	Patterns map[string]*PatternDefinition
}

// PatternDefinition is the format-agnostic representation of one library
// entry.
type PatternDefinition struct {
	Name        string
	Description string
	Text        string
	Tags        []string
	// Source is the file the definition was read from.
	Source string
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{Patterns: make(map[string]*PatternDefinition)}
}

// Add stores def, refusing a second definition with the same name.
func (l *Library) Add(def *PatternDefinition) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("pattern definition must have a name")
	}
	if existing, ok := l.Patterns[def.Name]; ok {
		return fmt.Errorf("duplicate pattern %q: defined in %s and %s", def.Name, existing.Source, def.Source)
	}
	l.Patterns[def.Name] = def
	return nil
}

// Get returns the definition called name.
func (l *Library) Get(name string) (*PatternDefinition, error) {
	def, ok := l.Patterns[name]
	if !ok {
		return nil, fmt.Errorf("pattern %q not found in library", name)
	}
	return def, nil
}

// Names returns the pattern names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.Patterns))
	for name := range l.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
