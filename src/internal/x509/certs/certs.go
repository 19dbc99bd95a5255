// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/wallet-core/src/internal/helper/gc"
	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrEmptyInput indicates that the provided data or stream carried no bytes.
	ErrEmptyInput = errors.New("x509certs: empty input")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")

	// ErrReadStream indicates that a certificate stream could not be read to the end.
	ErrReadStream = errors.New("x509certs: failed to read certificate stream")
)

// Decoder turns bundled or stored certificate bytes into [X.509] certificates.
// It accepts PEM, raw DER and PKCS7 (first certificate) encodings.
//
// Decoder holds no mutable state and is safe for concurrent use.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Decoder struct {
	blockType string
	pool      gc.Pool
}

// New creates a new Decoder backed by the default buffer pool.
func New() *Decoder {
	return &Decoder{
		blockType: "CERTIFICATE",
		pool:      gc.Default,
	}
}

// IsPEM checks if the data is in PEM format.
func (d *Decoder) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// Decode decodes exactly one certificate from data.
//
// PEM input must start with a CERTIFICATE block; anything after the first block is ignored.
// DER input that is not a plain certificate is retried as PKCS7 signed data.
func (d *Decoder) Decode(data []byte) (*x509.Certificate, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	if block, _ := pem.Decode(data); block != nil {
		if block.Type != d.blockType {
			return nil, ErrInvalidBlockType
		}
		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Some bundles ship as a degenerate PKCS7 "certs-only" message
	p, perr := pkcs7.ParsePKCS7(data)
	if perr != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseCertificate, err)
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates[0], nil
}

// DecodeReader reads r to the end through a pooled buffer and decodes a single certificate.
// The caller keeps ownership of r.
func (d *Decoder) DecodeReader(r io.Reader) (*x509.Certificate, error) {
	buf := d.pool.Get()
	defer func() {
		buf.Reset()
		d.pool.Put(buf)
	}()

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadStream, err)
	}

	// Parsed certificates alias their input, so the pooled bytes must not escape.
	return d.Decode(bytes.Clone(buf.Bytes()))
}

// DecodeMultiple decodes every certificate in data.
//
// PEM input may hold any number of CERTIFICATE blocks; any other block type fails the whole input.
// Non-PEM input is parsed as concatenated DER certificates.
func (d *Decoder) DecodeMultiple(data []byte) ([]*x509.Certificate, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	if !d.IsPEM(data) {
		certs, err := x509.ParseCertificates(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseCertificate, err)
		}
		return certs, nil
	}

	var certs []*x509.Certificate
	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type != d.blockType {
			return nil, ErrInvalidBlockType
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseCertificate, err)
		}

		certs = append(certs, cert)
		data = rest
	}

	return certs, nil
}
