// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package walletconfig

// Build-time constants. Each can be overridden per build variant with, e.g.,
//
//	go build -ldflags "-X github.com/H0llyW00dzZ/wallet-core/src/walletconfig.DefaultIssuerURL=https://issuer.eudiw.dev"
var (
	OpenID4VPScheme            = "openid4vp"
	EudiOpenID4VPScheme        = "eudi-openid4vp"
	MdocOpenID4VPScheme        = "mdoc-openid4vp"
	IssueAuthorizationDeepLink = "eu.europa.ec.euidi://authorization"
	DefaultIssuerURL           = "https://mdlissuer.azurewebsites.net"
	ClientID                   = "wallet-dev"
)

// BuildInfo carries the build-time inputs of a Config.
type BuildInfo struct {
	// Schemes are the URI schemes the wallet answers presentation requests on.
	Schemes []string
	// RedirectURI is the authorization redirect of the issuance flow.
	RedirectURI string
	// DefaultIssuerURL is used when no preference override is stored.
	DefaultIssuerURL string
	// ClientID identifies the wallet to the credential issuer.
	ClientID string
}

// DefaultBuildInfo returns the BuildInfo compiled into this binary.
func DefaultBuildInfo() BuildInfo {
	return BuildInfo{
		Schemes:          []string{OpenID4VPScheme, EudiOpenID4VPScheme, MdocOpenID4VPScheme},
		RedirectURI:      IssueAuthorizationDeepLink,
		DefaultIssuerURL: DefaultIssuerURL,
		ClientID:         ClientID,
	}
}
