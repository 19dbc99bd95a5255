// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - ExecutableName: Returns the executable name without extension for CLI usage
//
// # Usage Examples
//
//	rootCmd := &cobra.Command{
//	    Use:   posix.ExecutableName(os.Args[0], "wallet-core"),
//	    Short: "Inspect the wallet runtime configuration",
//	}
//
// Cross-Platform Behavior:
//
//   - Linux/macOS: "/usr/bin/wallet-core" → "wallet-core"
//   - Windows: "C:\bin\wallet-core.exe" → "wallet-core"
//   - Fallback: empty argv0 → the fallback name
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
