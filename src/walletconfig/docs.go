// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package walletconfig assembles the runtime configuration of the wallet core.
//
// A [Config] combines the static [OpenID4VP] and [OpenID4VCI] parameters, the
// credential issuer URL (taken from a preference override when one is set) and
// the reader trust anchors built by package trust. A [Provider] builds the Config
// on first use and hands the same immutable snapshot to every later caller,
// including callers racing the first one. A failed build is not cached.
//
// Typical wiring:
//
//	provider := walletconfig.NewProvider(
//		walletconfig.WithRepository(repository.NewDir(certsDir)),
//		walletconfig.WithPreferences(prefs.NewFile(prefsPath)),
//	)
//
//	cfg, err := provider.Config(ctx)
//	if err != nil {
//		return fmt.Errorf("wallet configuration: %w", err)
//	}
//
// [OpenID4VP]: https://openid.net/specs/openid-4-verifiable-presentations-1_0.html
// [OpenID4VCI]: https://openid.net/specs/openid-4-verifiable-credential-issuance-1_0.html
package walletconfig
