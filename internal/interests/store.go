// Package interests manages the persisted topic map that drives which
// feeds contribute to the daily brief.
package interests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Defaults returns the out-of-the-box topic map used when no interests
// file exists yet
func Defaults() map[string]bool {
	return map[string]bool{
		"News":       true,
		"Technology": true,
		"Science":    false,
	}
}

// Store reads and writes the interests JSON file. A mutex serializes
// access since GET and POST handlers may touch the file concurrently.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a store over the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the stored topic map, or the defaults when the file does
// not exist yet
func (s *Store) Load() (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read interests file: %w", err)
	}

	var m map[string]bool
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse interests file: %w", err)
	}
	return m, nil
}

// Save writes the topic map atomically (temp file plus rename) so a
// concurrent Load never observes a partial write
func (s *Store) Save(m map[string]bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal interests: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create interests directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "interests-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write interests: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace interests file: %w", err)
	}
	return nil
}

// EnabledTopics returns the enabled topic names sorted alphabetically so
// brief prompts stay deterministic
func (s *Store) EnabledTopics() ([]string, error) {
	m, err := s.Load()
	if err != nil {
		return nil, err
	}

	topics := make([]string, 0, len(m))
	for topic, enabled := range m {
		if enabled {
			topics = append(topics, topic)
		}
	}
	sort.Strings(topics)
	return topics, nil
}
