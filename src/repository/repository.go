// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package repository

import (
	"bytes"
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/wallet-core/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/wallet-core/src/internal/x509/certs"
)

// ErrRead indicates that a stored certificate file could not be read or decoded.
var ErrRead = errors.New("repository: failed to read stored certificate")

// Memory is an in-process certificate repository.
//
// The zero value is an empty repository. Memory is safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	certs []*x509.Certificate
}

// NewMemory returns a repository pre-populated with certs in the given order.
func NewMemory(certs ...*x509.Certificate) *Memory {
	return &Memory{certs: slices.Clone(certs)}
}

// Add appends certs after the ones already stored.
func (m *Memory) Add(certs ...*x509.Certificate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.certs = append(m.certs, certs...)
}

// StoredCertificates returns a snapshot of the stored certificates in insertion order.
func (m *Memory) StoredCertificates(ctx context.Context) ([]*x509.Certificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.certs), nil
}

// extensions lists the file suffixes Dir treats as certificate files.
var extensions = []string{".pem", ".crt", ".cer", ".der"}

// Dir is a certificate repository backed by a directory.
//
// Every regular file with a known certificate extension is decoded; a PEM file
// may hold several certificates. Subdirectories and other files are ignored.
// A missing directory is an empty repository.
type Dir struct {
	path    string
	decoder *x509certs.Decoder
}

// NewDir returns a repository reading path.
func NewDir(path string) *Dir {
	return &Dir{path: path, decoder: x509certs.New()}
}

// Path returns the backing directory.
func (d *Dir) Path() string { return d.path }

// StoredCertificates reads and decodes every certificate file in lexical file name order.
// Any unreadable or undecodable file fails the whole read with [ErrRead].
func (d *Dir) StoredCertificates(ctx context.Context) ([]*x509.Certificate, error) {
	entries, err := os.ReadDir(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	var certs []*x509.Certificate
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.Type().IsRegular() || !hasCertExtension(e.Name()) {
			continue
		}

		got, err := d.readFile(filepath.Join(d.path, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRead, e.Name(), err)
		}
		certs = append(certs, got...)
	}
	return certs, nil
}

func (d *Dir) readFile(path string) ([]*x509.Certificate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(f); err != nil {
		return nil, err
	}
	return d.decoder.DecodeMultiple(bytes.Clone(buf.Bytes()))
}

func hasCertExtension(name string) bool {
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(name)))
}
