// Package memory provides a driven.ConfigStore with no backing file.
// It serves `--config none`, where settings come from the built-in
// defaults and command line flags only.
package memory

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ErrNoFile is returned by Save because there is nowhere to write.
var ErrNoFile = fmt.Errorf("%w: no config file selected", domain.ErrNotImplemented)

// ConfigStore keeps flattened dot keys in memory.
type ConfigStore struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewConfigStore creates a store seeded with values. Later maps win.
// Keys use the same dot notation as the file store, e.g. "properties.title".
func NewConfigStore(values ...map[string]any) *ConfigStore {
	data := make(map[string]any)
	for _, m := range values {
		for k, v := range m {
			data[k] = v
		}
	}
	return &ConfigStore{data: data}
}

// Get returns the raw value for key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// GetString returns the value for key if it is a string.
func (s *ConfigStore) GetString(key string) string {
	v, _ := s.Get(key)
	str, _ := v.(string)
	return str
}

// GetInt returns the value for key as an int. TOML-style int64 and
// JSON-style float64 values are accepted.
func (s *ConfigStore) GetInt(key string) int {
	v, _ := s.Get(key)
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// GetBool returns the value for key if it is a bool.
func (s *ConfigStore) GetBool(key string) bool {
	v, _ := s.Get(key)
	b, _ := v.(bool)
	return b
}

// GetStringSlice returns the value for key as a list of strings.
// Non-string items are skipped; a non-list value yields nil.
func (s *ConfigStore) GetStringSlice(key string) []string {
	v, _ := s.Get(key)
	switch list := v.(type) {
	case []string:
		return append([]string{}, list...)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// Set stores value under key for the lifetime of the process.
func (s *ConfigStore) Set(key string, value any) error {
	if key == "" {
		return errors.New("config key cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Keys returns all configured keys in sorted order.
func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save always fails with ErrNoFile.
func (s *ConfigStore) Save() error {
	return ErrNoFile
}

// Load is a no-op; there is nothing to read.
func (s *ConfigStore) Load() error {
	return nil
}

// Path returns an empty string: no file backs the store.
func (s *ConfigStore) Path() string {
	return ""
}
