// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/wallet-core/src/cli"
	"github.com/H0llyW00dzZ/wallet-core/src/internal/x509/certtest"
	"github.com/H0llyW00dzZ/wallet-core/src/logger"
	"github.com/H0llyW00dzZ/wallet-core/src/repository"
	"github.com/H0llyW00dzZ/wallet-core/src/trust"
	"github.com/H0llyW00dzZ/wallet-core/src/walletconfig"
)

const version = "1.3.3.7-testing"

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(cli.EnvConfigFile, "")
	t.Setenv(cli.EnvCertsDir, "")
	t.Setenv(cli.EnvPrefsFile, "")

	var out, diag bytes.Buffer
	root := cli.NewRootCommand(version, logger.NewJSONLogger(&diag, "cli", false))
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&diag)

	err := root.ExecuteContext(context.Background())
	return out.String(), diag.String(), err
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestConfigCommand_JSON(t *testing.T) {
	out, _, err := run(t, "config")
	require.NoError(t, err)

	var desc walletconfig.Description
	require.NoError(t, json.Unmarshal([]byte(out), &desc))

	assert.Equal(t, walletconfig.DefaultIssuerURL, desc.OpenID4VCI.IssuerURL)
	assert.Equal(t, walletconfig.ParIfSupported, desc.OpenID4VCI.ParUsage)
	assert.EqualValues(t, 30000, desc.KeyCreation.AuthTimeoutMillis)
	require.Len(t, desc.TrustAnchors, 3)
	assert.Contains(t, desc.TrustAnchors[0].Subject, "PID Issuer CA - cz 02")
}

func TestConfigCommand_YAML(t *testing.T) {
	out, _, err := run(t, "config", "--yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "parUsage: if-supported")
	assert.Contains(t, out, "issuerUrl: "+walletconfig.DefaultIssuerURL)
	assert.Contains(t, out, "- mso_mdoc")
}

func TestConfigCommand_IssuerOverrideFromPrefs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "prefs.yaml", []byte("IssuerCrudPrefs:\n  selected_issuer: https://override.example\n"))

	out, _, err := run(t, "config", "--prefs", path)
	require.NoError(t, err)

	var desc walletconfig.Description
	require.NoError(t, json.Unmarshal([]byte(out), &desc))
	assert.Equal(t, "https://override.example", desc.OpenID4VCI.IssuerURL)
}

func TestConfigCommand_UnreadablePrefsFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "prefs.yaml", []byte("IssuerCrudPrefs: [not, a, map]\n"))

	out, diag, err := run(t, "config", "--prefs", path)
	require.NoError(t, err)

	var desc walletconfig.Description
	require.NoError(t, json.Unmarshal([]byte(out), &desc))
	assert.Equal(t, walletconfig.DefaultIssuerURL, desc.OpenID4VCI.IssuerURL)
	assert.Contains(t, diag, "issuer preference unreadable")
}

func TestConfigCommand_DefaultIssuerFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "wallet.yaml", []byte("issuer:\n  defaultUrl: https://issuer.test\n"))

	out, _, err := run(t, "--config", path, "config")
	require.NoError(t, err)

	var desc walletconfig.Description
	require.NoError(t, json.Unmarshal([]byte(out), &desc))
	assert.Equal(t, "https://issuer.test", desc.OpenID4VCI.IssuerURL)
}

func TestAnchorsCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "reader.pem", certtest.PEM(certtest.New(t, "Stored Reader CA")))

	out, _, err := run(t, "anchors", "--certs-dir", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 6, out)
	assert.Contains(t, lines[0], "SUBJECT", "markdown headers are upper-cased")
	assert.Contains(t, out, "pidissuerca02_cz.pem")
	assert.Contains(t, out, "PID Issuer CA - ut 02")
	assert.Contains(t, out, "Stored Reader CA")
	assert.Contains(t, out, string(trust.OriginRepository))
	assert.NotContains(t, out, "Skipped")

	bundled := strings.Index(out, "PID Issuer CA - cz 02")
	stored := strings.Index(out, "Stored Reader CA")
	assert.Less(t, bundled, stored, "bundled anchors come first")
}

func TestAnchorsCommand_RepositoryFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.pem", []byte("not a certificate"))

	_, _, err := run(t, "anchors", "--certs-dir", dir)
	assert.ErrorIs(t, err, trust.ErrRepository)
	assert.ErrorIs(t, err, repository.ErrRead)
}

func TestRoot_InvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "wallet.json", []byte(`{"logging": {"format": "xml"}}`))

	_, _, err := run(t, "--config", path, "config")
	assert.ErrorIs(t, err, cli.ErrInvalidConfig)
}

func TestRoot_FlagsOverrideEnvironment(t *testing.T) {
	envDir := t.TempDir()
	writeFile(t, envDir, "broken.pem", []byte("not a certificate"))

	flagDir := t.TempDir()
	writeFile(t, flagDir, "reader.pem", certtest.PEM(certtest.New(t, "Flag Reader CA")))

	var out bytes.Buffer
	t.Setenv(cli.EnvConfigFile, "")
	t.Setenv(cli.EnvPrefsFile, "")
	t.Setenv(cli.EnvCertsDir, envDir)

	root := cli.NewRootCommand(version, logger.Discard())
	root.SetArgs([]string{"anchors", "--certs-dir", flagDir})
	root.SetOut(&out)
	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Flag Reader CA")
}

func TestRoot_Version(t *testing.T) {
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestRoot_UnknownCommand(t *testing.T) {
	_, _, err := run(t, "resolve")
	assert.Error(t, err)
}
