// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// wallet-core is a command-line tool for inspecting the runtime configuration
// a credential wallet assembles at startup: the OpenID4VP and OpenID4VCI
// parameters, the resolved issuer URL and the merged trust anchors.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/wallet-core/cmd/wallet-core@latest
//
// # Usage
//
//	wallet-core [FLAGS] config [--yaml]
//	wallet-core [FLAGS] anchors
//
// # Flags
//
//	-c, --config     CLI configuration file (.json, .yaml, .yml)
//	    --certs-dir  Certificate repository directory appended after the bundled anchors
//	    --prefs      YAML preference file consulted for the issuer override
//
// The same settings can be given with WALLET_CORE_CONFIG_FILE,
// WALLET_CORE_CERTS_DIR and WALLET_CORE_PREFS_FILE. Flags take precedence.
//
// # Examples
//
// Print the assembled configuration as YAML:
//
//	wallet-core config --yaml
//
// List bundled and stored trust anchors:
//
//	wallet-core --certs-dir /var/lib/wallet/certs anchors
//
// Build with a different default issuer:
//
//	go build -ldflags "-X github.com/H0llyW00dzZ/wallet-core/src/walletconfig.DefaultIssuerURL=https://issuer.example" ./cmd/wallet-core
package main
