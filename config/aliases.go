package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kastheco/matiz/resolver"
	"gopkg.in/yaml.v3"
)

const aliasFile = "aliases.yaml"

type aliasDocument struct {
	Aliases []resolver.ColorEntry `yaml:"aliases"`
}

// AliasStore holds user-defined color entries persisted as YAML.
type AliasStore struct {
	mu      sync.RWMutex
	entries []resolver.ColorEntry
	path    string
}

// NewAliasStore creates a store that persists to path.
func NewAliasStore(path string) *AliasStore {
	return &AliasStore{path: path}
}

// Load reads the alias file. Missing file is not an error.
func (s *AliasStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read aliases: %w", err)
	}

	var doc aliasDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse aliases %s: %w", s.path, err)
	}
	s.entries = doc.Aliases
	return nil
}

// Save writes the aliases to disk, creating the directory if needed.
func (s *AliasStore) Save() error {
	s.mu.RLock()
	data, err := yaml.Marshal(aliasDocument{Aliases: s.entries})
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal aliases: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create alias dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write aliases: %w", err)
	}
	return nil
}

// Remember adds an entry, replacing any entry with the same name.
// The name itself is always one of the entry's keywords.
func (s *AliasStore) Remember(entry resolver.ColorEntry) {
	if !containsKeyword(entry.Keywords, entry.Name) {
		entry.Keywords = append([]string{entry.Name}, entry.Keywords...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.Name == entry.Name {
			s.entries[i] = entry
			return
		}
	}
	s.entries = append(s.entries, entry)
}

// Entries returns a copy of the stored entries.
func (s *AliasStore) Entries() []resolver.ColorEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]resolver.ColorEntry(nil), s.entries...)
}

// Path is the alias file location.
func (s *AliasStore) Path() string {
	return s.path
}

func containsKeyword(keywords []string, name string) bool {
	n := resolver.Normalize(name)
	for _, kw := range keywords {
		if resolver.Normalize(kw) == n {
			return true
		}
	}
	return false
}
