// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package walletconfig

import (
	"context"
	"fmt"

	"github.com/H0llyW00dzZ/wallet-core/src/internal/helper/once"
	"github.com/H0llyW00dzZ/wallet-core/src/logger"
	"github.com/H0llyW00dzZ/wallet-core/src/prefs"
	"github.com/H0llyW00dzZ/wallet-core/src/repository"
	"github.com/H0llyW00dzZ/wallet-core/src/resources/certs"
	"github.com/H0llyW00dzZ/wallet-core/src/trust"
)

// Option configures a Provider.
type Option func(*Provider)

// WithRegistry replaces the bundled certificate registry, which defaults to [certs.Bundled].
func WithRegistry(r trust.Registry) Option {
	return func(p *Provider) { p.registry = r }
}

// WithRepository sets the certificate repository. The default is an empty in-memory repository.
func WithRepository(r trust.Repository) Option {
	return func(p *Provider) { p.repository = r }
}

// WithPreferences sets the preference store consulted for the issuer override.
// The default is an empty in-memory store.
func WithPreferences(s prefs.Store) Option {
	return func(p *Provider) { p.prefs = s }
}

// WithBuildInfo replaces the compiled-in build-time inputs.
func WithBuildInfo(bi BuildInfo) Option {
	return func(p *Provider) { p.build = bi }
}

// WithLogger sets the diagnostics logger. The default discards output.
func WithLogger(l logger.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.log = l
		}
	}
}

// built is what one successful construction produces.
type built struct {
	config *Config
	report *trust.Report
}

// Provider lazily builds and memoizes a single Config.
//
// Thread Safety: Safe for concurrent use. Concurrent first callers wait for a
// single construction and all receive the same *Config. A failed construction
// is reported to its caller and retried by the next one.
type Provider struct {
	registry   trust.Registry
	repository trust.Repository
	prefs      prefs.Store
	build      BuildInfo
	log        logger.Logger

	cell once.Cell[*built]
}

// NewProvider returns a Provider that has not built anything yet.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		registry:   certs.Bundled,
		repository: repository.NewMemory(),
		prefs:      prefs.NewMemory(),
		build:      DefaultBuildInfo(),
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config returns the memoized Config, building it on first use.
//
// The returned error wraps [trust.ErrRepository] when the certificate repository
// could not be read. Skipped bundled certificates never fail the build.
func (p *Provider) Config(ctx context.Context) (*Config, error) {
	b, err := p.get(ctx)
	if err != nil {
		return nil, err
	}
	return b.config, nil
}

// Report returns the trust-anchor aggregation report of the memoized Config,
// building it on first use.
func (p *Provider) Report(ctx context.Context) (*trust.Report, error) {
	b, err := p.get(ctx)
	if err != nil {
		return nil, err
	}
	return b.report, nil
}

// Builds reports how many constructions have been attempted.
func (p *Provider) Builds() int { return p.cell.Attempts() }

func (p *Provider) get(ctx context.Context) (*built, error) {
	return p.cell.Get(func() (*built, error) { return p.construct(ctx) })
}

func (p *Provider) construct(ctx context.Context) (*built, error) {
	params := StaticParams(p.build)
	params.IssuerURL = ResolveIssuerURL(ctx, p.prefs, p.build.DefaultIssuerURL, p.log)

	report, err := trust.Aggregate(ctx, p.registry, p.repository, trust.WithLogger(p.log))
	if err != nil {
		p.log.Printf("walletconfig: configuration build failed: %v", err)
		return nil, fmt.Errorf("walletconfig: build configuration: %w", err)
	}
	params.TrustAnchors = report.Certificates()

	cfg := NewConfig(params)
	p.log.Printf("walletconfig: configuration built: issuer %s, %d trust anchors, %d bundled entries skipped",
		cfg.IssuerURL(), len(params.TrustAnchors), len(report.Skipped))

	return &built{config: cfg, report: report}, nil
}
