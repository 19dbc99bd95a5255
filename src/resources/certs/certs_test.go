// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certs

import (
	"context"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/wallet-core/src/internal/x509/certtest"
	"github.com/H0llyW00dzZ/wallet-core/src/trust"
)

func TestRegistryMatchesEmbeddedFiles(t *testing.T) {
	entries, err := fs.ReadDir(embedded, ".")
	require.NoError(t, err)

	var onDisk []string
	for _, e := range entries {
		onDisk = append(onDisk, e.Name())
	}

	var declared []string
	for _, r := range registry {
		declared = append(declared, r.Name)
	}

	assert.Equal(t, onDisk, declared, "registry_gen.go is stale, run go generate")
}

func TestBundled_AllDecode(t *testing.T) {
	report, err := trust.Aggregate(context.Background(), Bundled, nil)
	require.NoError(t, err)

	assert.Empty(t, report.Skipped, "every shipped certificate must decode")
	require.Len(t, report.Anchors, len(registry))
	for i, a := range report.Anchors {
		assert.Equal(t, registry[i], a.Resource, "anchors must follow declaration order")
		assert.Equal(t, trust.OriginBundled, a.Origin)
		assert.True(t, a.Certificate.IsCA)
	}
}

func TestBundle(t *testing.T) {
	cert := certtest.New(t, "Bundle Test")
	fsys := fstest.MapFS{
		"good.pem": {Data: certtest.PEM(cert)},
		"nested":   {Mode: fs.ModeDir},
	}

	tests := []struct {
		name     string
		testFunc func(t *testing.T, b *Bundle)
	}{
		{
			name: "Stat Present",
			testFunc: func(t *testing.T, b *Bundle) {
				assert.NoError(t, b.Stat(trust.Resource{ID: 1, Name: "good.pem"}))
			},
		},
		{
			name: "Stat Missing",
			testFunc: func(t *testing.T, b *Bundle) {
				assert.ErrorIs(t, b.Stat(trust.Resource{ID: 2, Name: "gone.pem"}), fs.ErrNotExist)
			},
		},
		{
			name: "Stat Directory",
			testFunc: func(t *testing.T, b *Bundle) {
				assert.ErrorIs(t, b.Stat(trust.Resource{ID: 3, Name: "nested"}), ErrNotRegular)
			},
		},
		{
			name: "Open",
			testFunc: func(t *testing.T, b *Bundle) {
				rc, err := b.Open(trust.Resource{ID: 1, Name: "good.pem"})
				require.NoError(t, err)
				defer rc.Close()

				data, err := io.ReadAll(rc)
				require.NoError(t, err)
				assert.Equal(t, certtest.PEM(cert), data)
			},
		},
		{
			name: "Resources Are Copied",
			testFunc: func(t *testing.T, b *Bundle) {
				got := b.Resources()
				got[0].Name = "tampered.pem"
				assert.Equal(t, "good.pem", b.Resources()[0].Name)
			},
		},
	}

	declared := []trust.Resource{{ID: 1, Name: "good.pem"}, {ID: 2, Name: "gone.pem"}, {ID: 3, Name: "nested"}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t, New(fsys, declared))
		})
	}
}

func TestBundle_SkipsUndiscoverableEntries(t *testing.T) {
	a := certtest.New(t, "A")
	b := certtest.New(t, "B")
	fsys := fstest.MapFS{
		"a.pem": {Data: certtest.PEM(a)},
		"b.der": {Data: b.Raw},
	}
	declared := []trust.Resource{{ID: 1, Name: "a.pem"}, {ID: 2, Name: "missing.pem"}, {ID: 3, Name: "b.der"}}

	report, err := trust.Aggregate(context.Background(), New(fsys, declared), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, certtest.CommonNames(report.Certificates()))
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, trust.StageDiscover, report.Skipped[0].Stage)
	assert.Equal(t, "missing.pem", report.Skipped[0].Resource.Name)
}
