// Package storage implements the local key/value storages a ledger can live in.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

// ErrQuotaExceeded is returned by Set when the value does not fit in the storage quota.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Memory is a storage held in memory. Its zero value is an empty, unlimited storage.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
	// Quota is the maximum number of bytes of keys and values together, 0 for no limit.
	Quota int
}

// NewMemory returns an empty Memory storage limited to quota bytes (0 for no limit).
func NewMemory(quota int) *Memory {
	return &Memory{values: make(map[string]string), Quota: quota}
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key, or returns ErrQuotaExceeded if it does not fit.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if m.Quota > 0 {
		size := len(key) + len(value)
		for k, v := range m.values {
			if k != key {
				size += len(k) + len(v)
			}
		}
		if size > m.Quota {
			return fmt.Errorf("cannot store %d bytes under %q, quota is %d: %w", len(value), key, m.Quota, ErrQuotaExceeded)
		}
	}
	m.values[key] = value
	return nil
}

// validKey restricts Dir keys to names that are safe file names.
var validKey = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Dir is a storage keeping each key in its own file of a directory.
//
// Values are written to a synced temporary file then renamed over the old one, so
// a crash during Set leaves either the old or the new value.
type Dir struct {
	path string
}

// NewDir returns a storage in the directory path. The directory is created on
// first write.
func NewDir(path string) *Dir { return &Dir{path: path} }

// Path returns the directory of this storage.
func (d *Dir) Path() string { return d.path }

func (d *Dir) filename(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(d.path, key), nil
}

// Get returns the content of the file of key; a missing file is no value.
func (d *Dir) Get(key string) (string, bool, error) {
	name, err := d.filename(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(name)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cannot read %q: %w", name, err)
	}
	return string(data), true, nil
}

// Set atomically replaces the file of key with value.
func (d *Dir) Set(key, value string) error {
	name, err := d.filename(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("cannot create storage directory %q: %w", d.path, err)
	}

	tmp, err := os.CreateTemp(d.path, "."+key+".*")
	if err != nil {
		return fmt.Errorf("cannot create temporary file for %q: %w", key, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("cannot replace %q: %w", name, err)
	}
	return nil
}
