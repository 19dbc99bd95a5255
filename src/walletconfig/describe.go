// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package walletconfig

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Description is a serializable view of a Config for inspection tools.
type Description struct {
	KeyCreation struct {
		UserAuthRequired          bool  `json:"userAuthRequired" yaml:"userAuthRequired"`
		AuthTimeoutMillis         int64 `json:"authTimeoutMillis" yaml:"authTimeoutMillis"`
		UseHardwareBackedKeystore bool  `json:"useHardwareBackedKeystore" yaml:"useHardwareBackedKeystore"`
	} `json:"keyCreation" yaml:"keyCreation"`

	OpenID4VP struct {
		EncryptionAlgorithms []EncryptionAlgorithm `json:"encryptionAlgorithms" yaml:"encryptionAlgorithms"`
		EncryptionMethods    []EncryptionMethod    `json:"encryptionMethods" yaml:"encryptionMethods"`
		ClientIDSchemes      []ClientIDScheme      `json:"clientIdSchemes" yaml:"clientIdSchemes"`
		Schemes              []string              `json:"schemes" yaml:"schemes"`
		Formats              []Format              `json:"formats" yaml:"formats"`
	} `json:"openId4Vp" yaml:"openId4Vp"`

	OpenID4VCI struct {
		IssuerURL   string   `json:"issuerUrl" yaml:"issuerUrl"`
		ClientID    string   `json:"clientId" yaml:"clientId"`
		RedirectURI string   `json:"authFlowRedirectionUri" yaml:"authFlowRedirectionUri"`
		ParUsage    ParUsage `json:"parUsage" yaml:"parUsage"`
		UseDPoP     bool     `json:"useDPoPIfSupported" yaml:"useDPoPIfSupported"`
	} `json:"openId4Vci" yaml:"openId4Vci"`

	TrustAnchors []AnchorDescription `json:"readerTrustStore" yaml:"readerTrustStore"`
}

// AnchorDescription identifies one trust anchor without carrying its bytes.
type AnchorDescription struct {
	Subject           string    `json:"subject" yaml:"subject"`
	Issuer            string    `json:"issuer" yaml:"issuer"`
	SerialNumber      string    `json:"serialNumber" yaml:"serialNumber"`
	NotAfter          time.Time `json:"notAfter" yaml:"notAfter"`
	SHA256Fingerprint string    `json:"sha256Fingerprint" yaml:"sha256Fingerprint"`
}

// Describe returns the serializable view of c.
func (c *Config) Describe() Description {
	var d Description

	d.KeyCreation.UserAuthRequired = c.userAuthRequired
	d.KeyCreation.AuthTimeoutMillis = c.AuthTimeoutMillis()
	d.KeyCreation.UseHardwareBackedKeystore = c.useHardwareBackedKeystore

	d.OpenID4VP.EncryptionAlgorithms = c.EncryptionAlgorithms()
	d.OpenID4VP.EncryptionMethods = c.EncryptionMethods()
	d.OpenID4VP.ClientIDSchemes = c.ClientIDSchemes()
	d.OpenID4VP.Schemes = c.Schemes()
	d.OpenID4VP.Formats = c.Formats()

	d.OpenID4VCI.IssuerURL = c.issuerURL
	d.OpenID4VCI.ClientID = c.clientID
	d.OpenID4VCI.RedirectURI = c.redirectURI
	d.OpenID4VCI.ParUsage = c.parUsage
	d.OpenID4VCI.UseDPoP = c.useDPoP

	d.TrustAnchors = make([]AnchorDescription, 0, len(c.trustAnchors))
	for _, cert := range c.trustAnchors {
		sum := sha256.Sum256(cert.Raw)
		d.TrustAnchors = append(d.TrustAnchors, AnchorDescription{
			Subject:           cert.Subject.String(),
			Issuer:            cert.Issuer.String(),
			SerialNumber:      cert.SerialNumber.Text(16),
			NotAfter:          cert.NotAfter.UTC(),
			SHA256Fingerprint: hex.EncodeToString(sum[:]),
		})
	}
	return d
}
