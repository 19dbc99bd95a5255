// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package walletconfig

import "fmt"

// EncryptionAlgorithm is a JWE key management algorithm identifier.
type EncryptionAlgorithm string

const (
	EncryptionAlgorithmECDHES EncryptionAlgorithm = "ECDH-ES"
)

// EncryptionMethod is a JWE content encryption identifier.
type EncryptionMethod string

const (
	EncryptionMethodA128CBCHS256 EncryptionMethod = "A128CBC-HS256"
	EncryptionMethodA256GCM      EncryptionMethod = "A256GCM"
)

// ClientIDScheme is an OpenID4VP verifier client identifier scheme.
type ClientIDScheme string

const (
	ClientIDSchemeX509SanDNS ClientIDScheme = "x509_san_dns"
)

// Format is a credential format identifier.
type Format string

const (
	// FormatMsoMdoc is the ISO/IEC 18013-5 mobile document format.
	FormatMsoMdoc Format = "mso_mdoc"
	// FormatSdJwtVc is the selective-disclosure JWT VC format, ES256-signed.
	FormatSdJwtVc Format = "vc+sd-jwt"
)

// ParUsage controls when the issuance flow uses pushed authorization requests.
type ParUsage int

const (
	ParNever ParUsage = iota
	ParIfSupported
	ParRequired
)

var parUsageNames = [...]string{
	ParNever:       "never",
	ParIfSupported: "if-supported",
	ParRequired:    "required",
}

// String returns the lower-case, hyphenated policy name.
func (p ParUsage) String() string {
	if p < 0 || int(p) >= len(parUsageNames) {
		return fmt.Sprintf("ParUsage(%d)", int(p))
	}
	return parUsageNames[p]
}

// MarshalText implements [encoding.TextMarshaler].
func (p ParUsage) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(parUsageNames) {
		return nil, fmt.Errorf("walletconfig: unknown PAR usage %d", int(p))
	}
	return []byte(parUsageNames[p]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *ParUsage) UnmarshalText(text []byte) error {
	for i, name := range parUsageNames {
		if name == string(text) {
			*p = ParUsage(i)
			return nil
		}
	}
	return fmt.Errorf("walletconfig: unknown PAR usage %q", text)
}
