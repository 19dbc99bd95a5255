// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package trust assembles the wallet's reader trust anchors.
//
// Anchors come from two sources, merged by concatenation:
//   - the certificates bundled with the application, read from a build-time
//     generated [Registry] in declaration order;
//   - the certificates held by a runtime-mutable [Repository], in the
//     repository's own order.
//
// A bundled entry that cannot be discovered, opened or decoded is skipped and
// reported; it never aborts the build. A repository read failure does, since
// the repository is the only source of anchors added at runtime.
//
// The package does not validate chains, sort, or deduplicate.
package trust
