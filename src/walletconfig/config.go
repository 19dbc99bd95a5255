// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package walletconfig

import (
	"crypto/x509"
	"slices"
	"time"
)

// Params holds every resolved input of a Config.
type Params struct {
	// Key creation policy
	UserAuthRequired          bool
	AuthTimeout               time.Duration
	UseHardwareBackedKeystore bool

	// OpenID4VP
	EncryptionAlgorithms []EncryptionAlgorithm
	EncryptionMethods    []EncryptionMethod
	ClientIDSchemes      []ClientIDScheme
	Schemes              []string
	Formats              []Format

	// OpenID4VCI
	IssuerURL   string
	ClientID    string
	RedirectURI string
	ParUsage    ParUsage
	UseDPoP     bool

	TrustAnchors []*x509.Certificate
}

// Config is an immutable wallet configuration snapshot.
//
// All state is unexported; slice accessors return copies. The certificates
// themselves are shared and must be treated as read-only, like any
// [*x509.Certificate] obtained from a pool.
type Config struct {
	userAuthRequired          bool
	authTimeout               time.Duration
	useHardwareBackedKeystore bool

	encryptionAlgorithms []EncryptionAlgorithm
	encryptionMethods    []EncryptionMethod
	clientIDSchemes      []ClientIDScheme
	schemes              []string
	formats              []Format

	issuerURL   string
	clientID    string
	redirectURI string
	parUsage    ParUsage
	useDPoP     bool

	trustAnchors []*x509.Certificate
	pool         *x509.CertPool
}

// NewConfig builds a Config from p. Every slice in p is copied, so later
// changes to p do not reach the Config.
func NewConfig(p Params) *Config {
	anchors := slices.Clone(p.TrustAnchors)

	pool := x509.NewCertPool()
	for _, cert := range anchors {
		pool.AddCert(cert)
	}

	return &Config{
		userAuthRequired:          p.UserAuthRequired,
		authTimeout:               p.AuthTimeout,
		useHardwareBackedKeystore: p.UseHardwareBackedKeystore,

		encryptionAlgorithms: slices.Clone(p.EncryptionAlgorithms),
		encryptionMethods:    slices.Clone(p.EncryptionMethods),
		clientIDSchemes:      slices.Clone(p.ClientIDSchemes),
		schemes:              slices.Clone(p.Schemes),
		formats:              slices.Clone(p.Formats),

		issuerURL:   p.IssuerURL,
		clientID:    p.ClientID,
		redirectURI: p.RedirectURI,
		parUsage:    p.ParUsage,
		useDPoP:     p.UseDPoP,

		trustAnchors: anchors,
		pool:         pool,
	}
}

// StaticParams returns the fixed protocol parameters of the wallet with bi's
// build-time inputs filled in. IssuerURL is bi.DefaultIssuerURL and TrustAnchors is empty.
func StaticParams(bi BuildInfo) Params {
	return Params{
		UserAuthRequired:          false,
		AuthTimeout:               30 * time.Second,
		UseHardwareBackedKeystore: true,

		EncryptionAlgorithms: []EncryptionAlgorithm{EncryptionAlgorithmECDHES},
		EncryptionMethods:    []EncryptionMethod{EncryptionMethodA128CBCHS256, EncryptionMethodA256GCM},
		ClientIDSchemes:      []ClientIDScheme{ClientIDSchemeX509SanDNS},
		Schemes:              slices.Clone(bi.Schemes),
		Formats:              []Format{FormatMsoMdoc, FormatSdJwtVc},

		IssuerURL:   bi.DefaultIssuerURL,
		ClientID:    bi.ClientID,
		RedirectURI: bi.RedirectURI,
		ParUsage:    ParIfSupported,
		UseDPoP:     true,
	}
}

// UserAuthRequired reports whether document keys require user authentication.
func (c *Config) UserAuthRequired() bool { return c.userAuthRequired }

// AuthTimeout is how long a user authentication unlocks document keys.
func (c *Config) AuthTimeout() time.Duration { return c.authTimeout }

// AuthTimeoutMillis is AuthTimeout in milliseconds.
func (c *Config) AuthTimeoutMillis() int64 { return c.authTimeout.Milliseconds() }

// UseHardwareBackedKeystore reports whether document keys live in a hardware-backed keystore.
func (c *Config) UseHardwareBackedKeystore() bool { return c.useHardwareBackedKeystore }

// EncryptionAlgorithms are the JWE key-management algorithms for presentation responses.
func (c *Config) EncryptionAlgorithms() []EncryptionAlgorithm {
	return slices.Clone(c.encryptionAlgorithms)
}

// EncryptionMethods are the JWE content-encryption methods for presentation responses.
func (c *Config) EncryptionMethods() []EncryptionMethod { return slices.Clone(c.encryptionMethods) }

// ClientIDSchemes are the verifier client identifier schemes the wallet accepts.
func (c *Config) ClientIDSchemes() []ClientIDScheme { return slices.Clone(c.clientIDSchemes) }

// Schemes are the URI schemes accepted for presentation requests.
func (c *Config) Schemes() []string { return slices.Clone(c.schemes) }

// Formats are the supported credential formats.
func (c *Config) Formats() []Format { return slices.Clone(c.formats) }

// IssuerURL is the resolved credential issuer base URL.
func (c *Config) IssuerURL() string { return c.issuerURL }

// ClientID is the OAuth client identifier presented to the issuer.
func (c *Config) ClientID() string { return c.clientID }

// RedirectURI is the authorization flow redirection URI.
func (c *Config) RedirectURI() string { return c.redirectURI }

// ParUsage is the pushed authorization request policy.
func (c *Config) ParUsage() ParUsage { return c.parUsage }

// UseDPoP reports whether DPoP is used when the issuer supports it.
func (c *Config) UseDPoP() bool { return c.useDPoP }

// TrustAnchors returns the reader trust anchors, bundled certificates first.
func (c *Config) TrustAnchors() []*x509.Certificate { return slices.Clone(c.trustAnchors) }

// CertPool returns a pool holding the trust anchors.
// Each call returns an independent clone.
func (c *Config) CertPool() *x509.CertPool { return c.pool.Clone() }
