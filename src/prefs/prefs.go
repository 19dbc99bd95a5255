// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package prefs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMalformed indicates that a preference file exists but is not a valid document.
	ErrMalformed = errors.New("prefs: malformed preference file")

	// ErrUnreadable indicates that a preference file exists but could not be read.
	ErrUnreadable = errors.New("prefs: preference file unreadable")
)

// Store reads namespaced string preferences.
type Store interface {
	// Get returns the value stored under namespace and key.
	// ok is false when either the namespace or the key is absent.
	Get(ctx context.Context, namespace, key string) (value string, ok bool, err error)
}

// Memory is an in-process Store.
//
// The zero value is an empty store ready to use. Memory is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{} }

// Set stores value under namespace and key.
func (m *Memory) Set(namespace, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.values == nil {
		m.values = make(map[string]map[string]string)
	}
	ns, ok := m.values[namespace]
	if !ok {
		ns = make(map[string]string)
		m.values[namespace] = ns
	}
	ns[key] = value
}

// Delete removes key from namespace. Deleting an absent key is a no-op.
func (m *Memory) Delete(namespace, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values[namespace], key)
}

// Get implements [Store].
func (m *Memory) Get(_ context.Context, namespace, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[namespace][key]
	return v, ok, nil
}

// File is a Store backed by a YAML document of the form
//
//	IssuerCrudPrefs:
//	  selected_issuer: https://issuer.example
//
// The file is re-read on every Get, so edits made by another process are picked up.
// A missing file behaves as an empty store.
type File struct {
	path string
}

// NewFile returns a Store reading path.
func NewFile(path string) *File { return &File{path: path} }

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Get implements [Store].
func (f *File) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	doc, err := f.load()
	if err != nil {
		return "", false, err
	}

	v, ok := doc[namespace][key]
	return v, ok, nil
}

func (f *File) load() (map[string]map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	var doc map[string]map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, f.path, err)
	}
	return doc, nil
}
