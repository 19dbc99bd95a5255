// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"bytes"
	"encoding/pem"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/wallet-core/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/wallet-core/src/internal/x509/certtest"
)

// Test certificate from www.google.com. Expiry is irrelevant here, nothing is verified.
const testCertPEM = `
-----BEGIN CERTIFICATE-----
MIIEVzCCAz+gAwIBAgIRAIsnDh7AqstVCQTDZO49FUQwDQYJKoZIhvcNAQELBQAw
OzELMAkGA1UEBhMCVVMxHjAcBgNVBAoTFUdvb2dsZSBUcnVzdCBTZXJ2aWNlczEM
MAoGA1UEAxMDV1IyMB4XDTI1MTEyNDA4NDEwNVoXDTI2MDIxNjA4NDEwNFowGTEX
MBUGA1UEAxMOd3d3Lmdvb2dsZS5jb20wWTATBgcqhkjOPQIBBggqhkjOPQMBBwNC
AASpOrUKgQJxuBGxizx+kmyx5RrD4jQmo8qLKSuwJqGHq32bVzWZGD67H9R4OZrU
dvyPaKf5c8xcR0dfErljBgc9o4ICQTCCAj0wDgYDVR0PAQH/BAQDAgeAMBMGA1Ud
JQQMMAoGCCsGAQUFBwMBMAwGA1UdEwEB/wQCMAAwHQYDVR0OBBYEFB/jnLpRtZ7i
zZrj5pmoPbY4QlomMB8GA1UdIwQYMBaAFN4bHu15FdQ+NyTDIbvsNDltQrIwMFgG
CCsGAQUFBwEBBEwwSjAhBggrBgEFBQcwAYYVaHR0cDovL28ucGtpLmdvb2cvd3Iy
MCUGCCsGAQUFBzAChhlodHRwOi8vaS5wa2kuZ29vZy93cjIuY3J0MBkGA1UdEQQS
MBCCDnd3dy5nb29nbGUuY29tMBMGA1UdIAQMMAowCAYGZ4EMAQIBMDYGA1UdHwQv
MC0wK6ApoCeGJWh0dHA6Ly9jLnBraS5nb29nL3dyMi9HU3lUMU40UEJyZy5jcmww
ggEEBgorBgEEAdZ5AgQCBIH1BIHyAPAAdwCWl2S/VViXrfdDh2g3CEJ36fA61fak
8zZuRqQ/D8qpxgAAAZq1PQh6AAAEAwBIMEYCIQDkvhCgZXnoybm66RiqqWXZN6qE
VzPoPHn/kyXZ7Y55yAIhALTMfGlCgnC9W0iu+cR9qCmOwsEr5k6Bl7Ub2w7GCUIu
AHUASZybad4dfOz8Nt7Nh2SmuFuvCoeAGdFVUvvp6ynd+MMAAAGatT0IWAAABAMA
RjBEAiBQITcviDubQYQiIxBwjcgmkl4CH1x4RzykXJrp8cCLKwIgFpdUBEBwTjCw
wTjI3H2paYucltfUre6q/vBei3HhNqcwDQYJKoZIhvcNAQELBQADggEBAE+UAURG
T3JZxq6fjAK5Espfe49Wb0mz1kCTwNY56sbYP/Fa+Kb7kVluDIFbMN2rspADwKBu
FR7QVda3zEIu4Hj1DUmD7ecmVYCxLQ241OYdice4AfJTwDVJVymdQPFoLBP27dWK
3izwcfkPSgXIT8nHcEvDvXljn7n+n3XXuzh1Y1vFnFUa5E69JQFXXDuu/a7LiEXx
uB5j0Xga7DgFyHHHnz7zSiFr37NBb0/CH/31fkgaQPj7Fr5dyCMzMg1rQe1FGOM6
fXT8WHASUpqRebQfDy2TPE7sjve2NenS36NeiiVZXhBo5MHvGCBY3W8OYljK4zeU
uugY3q/5At03UHw=
-----END CERTIFICATE-----
`

const (
	invalidPEM = `
-----BEGIN INVALID-----
MIIEmTCCBD+gAwIBAgIRANFjRCmF+Y2bUYHbhxwkEpowCgYIKoZIzj0EAwIwgY8x
-----END INVALID-----
`

	invalidCERT = `
-----BEGIN CERTIFICATE-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAz6e5VV5F8rF2sFJ0Q4vA
-----END CERTIFICATE-----
`
)

func TestDecoder_Decode(t *testing.T) {
	block, _ := pem.Decode([]byte(testCertPEM))
	require.NotNil(t, block, "failed to parse certificate PEM for test setup")

	tests := []struct {
		name     string
		input    []byte
		wantCN   string
		expected error
	}{
		{
			name:   "PEM Certificate",
			input:  []byte(testCertPEM),
			wantCN: "www.google.com",
		},
		{
			name:   "DER Certificate",
			input:  block.Bytes,
			wantCN: "www.google.com",
		},
		{
			name:     "Invalid PEM Block Type",
			input:    []byte(invalidPEM),
			expected: x509certs.ErrInvalidBlockType,
		},
		{
			name:     "Invalid Certificate",
			input:    []byte(invalidCERT),
			expected: x509certs.ErrParseCertificate,
		},
		{
			name:     "Garbage Bytes",
			input:    []byte("not a certificate"),
			expected: x509certs.ErrParseCertificate,
		},
		{
			name:     "Empty Input",
			input:    nil,
			expected: x509certs.ErrEmptyInput,
		},
	}

	decoder := x509certs.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert, err := decoder.Decode(tt.input)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected, "expected specific error")
				assert.Nil(t, cert)
				return
			}

			require.NoError(t, err, "Decode() error")
			assert.Equal(t, tt.wantCN, cert.Subject.CommonName)
		})
	}
}

func TestDecoder_DecodeReader(t *testing.T) {
	decoder := x509certs.New()

	t.Run("Valid Stream", func(t *testing.T) {
		cert, err := decoder.DecodeReader(strings.NewReader(testCertPEM))
		require.NoError(t, err, "DecodeReader() error")
		assert.Equal(t, "www.google.com", cert.Subject.CommonName)
	})

	t.Run("Failing Stream", func(t *testing.T) {
		_, err := decoder.DecodeReader(iotest.ErrReader(errors.New("disk gone")))
		assert.ErrorIs(t, err, x509certs.ErrReadStream)
	})

	t.Run("Empty Stream", func(t *testing.T) {
		_, err := decoder.DecodeReader(bytes.NewReader(nil))
		assert.ErrorIs(t, err, x509certs.ErrEmptyInput)
	})

	t.Run("Pooled Buffers Do Not Leak Between Reads", func(t *testing.T) {
		a := certtest.New(t, "Anchor A")
		b := certtest.New(t, "Anchor B")

		first, err := decoder.DecodeReader(bytes.NewReader(certtest.PEM(a)))
		require.NoError(t, err)
		second, err := decoder.DecodeReader(bytes.NewReader(b.Raw))
		require.NoError(t, err)

		assert.True(t, first.Equal(a))
		assert.True(t, second.Equal(b))
	})
}

func TestDecoder_DecodeMultiple(t *testing.T) {
	decoder := x509certs.New()
	a := certtest.New(t, "Anchor A")
	b := certtest.New(t, "Anchor B")

	tests := []struct {
		name        string
		input       []byte
		expectCN    []string
		expectError error
	}{
		{
			name:     "Single PEM Certificate",
			input:    []byte(testCertPEM),
			expectCN: []string{"www.google.com"},
		},
		{
			name:     "Multiple PEM Certificates Keep Order",
			input:    certtest.Bundle(b, a),
			expectCN: []string{"Anchor B", "Anchor A"},
		},
		{
			name:     "Concatenated DER",
			input:    append(append([]byte{}, a.Raw...), b.Raw...),
			expectCN: []string{"Anchor A", "Anchor B"},
		},
		{
			name:        "Invalid PEM Type",
			input:       []byte(invalidPEM),
			expectError: x509certs.ErrInvalidBlockType,
		},
		{
			name:        "Invalid Certificate Data",
			input:       []byte(invalidCERT),
			expectError: x509certs.ErrParseCertificate,
		},
		{
			name:        "Empty Input",
			input:       []byte{},
			expectError: x509certs.ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certs, err := decoder.DecodeMultiple(tt.input)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError, "expected specific error")
				return
			}

			require.NoError(t, err, "unexpected error")
			assert.Equal(t, tt.expectCN, certtest.CommonNames(certs))
		})
	}
}

func TestDecoder_IsPEM(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected bool
	}{
		{name: "Valid PEM", input: []byte(testCertPEM), expected: true},
		{name: "Invalid PEM", input: []byte("not a pem block"), expected: false},
		{name: "Empty Input", input: []byte(""), expected: false},
		{name: "DER format (binary)", input: []byte{0x30, 0x82, 0x01, 0x23}, expected: false},
	}

	decoder := x509certs.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decoder.IsPEM(tt.input), "IsPEM() result incorrect")
		})
	}
}

func TestDecoder_DecodeGeneratedPEM(t *testing.T) {
	decoder := x509certs.New()
	cert := certtest.New(t, "Round Trip")

	encoded := certtest.PEM(cert)
	block, _ := pem.Decode(encoded)
	require.NotNil(t, block, "failed to decode encoded PEM")
	assert.Equal(t, "CERTIFICATE", block.Type, "expected block type CERTIFICATE")

	decoded, err := decoder.Decode(encoded)
	require.NoError(t, err)
	assert.True(t, cert.Equal(decoded), "original and decoded certificates are not equal")
}
