// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package repository provides certificate repositories that satisfy [trust.Repository].
//
// [Memory] keeps certificates in insertion order. [Dir] reads certificate files
// from a directory managed by another process, in lexical file name order.
//
// [trust.Repository]: https://pkg.go.dev/github.com/H0llyW00dzZ/wallet-core/src/trust#Repository
package repository
