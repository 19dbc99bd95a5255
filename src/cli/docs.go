// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for inspecting the wallet runtime configuration.
// It implements a Cobra-based CLI that assembles the configuration exactly once per invocation
// and prints it as JSON or YAML, or lists the merged trust anchors as a markdown table together
// with any bundled certificate resources that were skipped.
// The package handles configuration files, context cancellation, and integrates with the logger
// package for diagnostics on stderr.
package cli
