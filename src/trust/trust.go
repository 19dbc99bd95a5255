// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trust

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"io"

	x509certs "github.com/H0llyW00dzZ/wallet-core/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/wallet-core/src/logger"
)

var (
	// ErrRepository indicates that the certificate repository could not be read.
	ErrRepository = errors.New("trust: certificate repository read failed")

	// ErrStat indicates that a bundled resource's metadata could not be read during discovery.
	ErrStat = errors.New("trust: bundled resource not discoverable")

	// ErrOpen indicates that a bundled resource stream could not be opened.
	ErrOpen = errors.New("trust: bundled resource could not be opened")

	// ErrDecode indicates that a bundled resource is not a decodable X.509 certificate.
	ErrDecode = errors.New("trust: bundled resource is not a certificate")
)

// Resource identifies one certificate file bundled with the application.
type Resource struct {
	// ID is the stable integer key assigned by the registry generator.
	ID int
	// Name is the file name inside the bundle.
	Name string
}

// String returns the resource name together with its ID.
func (r Resource) String() string { return fmt.Sprintf("%s#%d", r.Name, r.ID) }

// Registry enumerates the certificate resources compiled into the application.
type Registry interface {
	// Resources returns every declared resource in declaration order.
	Resources() []Resource
	// Stat reports whether the resource is present and accessible.
	Stat(r Resource) error
	// Open returns the resource's byte stream. The caller closes it.
	Open(r Resource) (io.ReadCloser, error)
}

// Repository is the external, runtime-mutable certificate store.
// It is only ever read here.
type Repository interface {
	// StoredCertificates returns the currently stored certificates in the repository's own order.
	StoredCertificates(ctx context.Context) ([]*x509.Certificate, error)
}

// Origin tells where a trust anchor came from.
type Origin string

const (
	// OriginBundled marks anchors decoded from the bundled registry.
	OriginBundled Origin = "bundled"
	// OriginRepository marks anchors returned by the certificate repository.
	OriginRepository Origin = "repository"
)

// Stage names the step at which a bundled resource was dropped.
type Stage string

const (
	// StageDiscover marks a resource whose metadata could not be read.
	StageDiscover Stage = "discover"
	// StageOpen marks a resource whose stream could not be opened.
	StageOpen Stage = "open"
	// StageDecode marks a resource that is not a decodable certificate.
	StageDecode Stage = "decode"
)

// Anchor is one entry of the merged trust-anchor list.
type Anchor struct {
	Certificate *x509.Certificate
	Origin      Origin
	// Resource is set for bundled anchors only.
	Resource Resource
}

// SkippedEntry records a bundled resource that did not make it into the list.
type SkippedEntry struct {
	Resource Resource
	Stage    Stage
	Err      error
}

// Report is the outcome of one aggregation pass.
type Report struct {
	Anchors []Anchor
	Skipped []SkippedEntry
}

// Certificates returns the anchors as a plain certificate list, bundled first.
func (r *Report) Certificates() []*x509.Certificate {
	certs := make([]*x509.Certificate, 0, len(r.Anchors))
	for _, a := range r.Anchors {
		certs = append(certs, a.Certificate)
	}
	return certs
}

// Option configures an aggregation pass.
type Option func(*aggregator)

// WithLogger sets the logger that receives one line per skipped resource.
func WithLogger(l logger.Logger) Option {
	return func(a *aggregator) {
		if l != nil {
			a.log = l
		}
	}
}

type aggregator struct {
	log     logger.Logger
	decoder *x509certs.Decoder
}

// Aggregate runs discovery, decode and merge, and returns the full report.
//
// A nil registry contributes no bundled anchors; a nil repository contributes no
// stored anchors. The only error paths are a repository failure, wrapped in
// [ErrRepository], and context cancellation.
func Aggregate(ctx context.Context, reg Registry, repo Repository, opts ...Option) (*Report, error) {
	a := &aggregator{
		log:     logger.Discard(),
		decoder: x509certs.New(),
	}
	for _, opt := range opts {
		opt(a)
	}

	report := &Report{}
	if reg != nil {
		if err := a.bundled(ctx, reg, report); err != nil {
			return nil, err
		}
	}

	if repo != nil {
		stored, err := repo.StoredCertificates(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRepository, err)
		}
		for _, cert := range stored {
			report.Anchors = append(report.Anchors, Anchor{Certificate: cert, Origin: OriginRepository})
		}
	}

	return report, nil
}

// BuildTrustAnchors returns the merged trust-anchor list: bundled certificates in
// registry order followed by repository certificates in repository order.
func BuildTrustAnchors(ctx context.Context, reg Registry, repo Repository, opts ...Option) ([]*x509.Certificate, error) {
	report, err := Aggregate(ctx, reg, repo, opts...)
	if err != nil {
		return nil, err
	}
	return report.Certificates(), nil
}

func (a *aggregator) bundled(ctx context.Context, reg Registry, report *Report) error {
	for _, res := range reg.Resources() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := reg.Stat(res); err != nil {
			a.skip(report, res, StageDiscover, fmt.Errorf("%w: %w", ErrStat, err))
			continue
		}

		cert, stage, err := a.decode(reg, res)
		if err != nil {
			a.skip(report, res, stage, err)
			continue
		}

		report.Anchors = append(report.Anchors, Anchor{Certificate: cert, Origin: OriginBundled, Resource: res})
	}
	return nil
}

func (a *aggregator) decode(reg Registry, res Resource) (*x509.Certificate, Stage, error) {
	rc, err := reg.Open(res)
	if err != nil {
		return nil, StageOpen, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer rc.Close()

	cert, err := a.decoder.DecodeReader(rc)
	if err != nil {
		return nil, StageDecode, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return cert, "", nil
}

func (a *aggregator) skip(report *Report, res Resource, stage Stage, err error) {
	a.log.Printf("trust: skipping bundled certificate %s at %s: %v", res, stage, err)
	report.Skipped = append(report.Skipped, SkippedEntry{Resource: res, Stage: stage, Err: err})
}
