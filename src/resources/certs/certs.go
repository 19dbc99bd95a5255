// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certs

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"

	"github.com/H0llyW00dzZ/wallet-core/src/trust"
)

//go:generate go run ../../../tools/codegen -dir . -out registry_gen.go

//go:embed *.pem *.der
var embedded embed.FS

// ErrNotRegular indicates that a declared resource resolves to something other than a regular file.
var ErrNotRegular = errors.New("certs: resource is not a regular file")

// Bundle serves a fixed, ordered list of certificate resources from a file system.
// It implements [trust.Registry].
//
// Bundle is read-only and safe for concurrent use.
type Bundle struct {
	fsys      fs.FS
	resources []trust.Resource
}

// New returns a Bundle over fsys declaring resources in the given order.
// The list is copied.
func New(fsys fs.FS, resources []trust.Resource) *Bundle {
	return &Bundle{fsys: fsys, resources: slices.Clone(resources)}
}

// Bundled is the registry of certificates compiled into the binary.
var Bundled = New(embedded, registry)

// Resources returns the declared resources in declaration order.
func (b *Bundle) Resources() []trust.Resource { return slices.Clone(b.resources) }

// Stat reports whether r is present in the bundle as a regular file.
func (b *Bundle) Stat(r trust.Resource) error {
	info, err := fs.Stat(b.fsys, r.Name)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegular, r.Name)
	}
	return nil
}

// Open opens the byte stream of r.
func (b *Bundle) Open(r trust.Resource) (io.ReadCloser, error) { return b.fsys.Open(r.Name) }
