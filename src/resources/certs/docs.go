// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package certs bundles the reader trust-anchor certificates shipped with the wallet.
//
// The certificate files live next to this package and are compiled in with
// [embed]. Their declaration order is fixed by registry_gen.go, which is
// regenerated from the directory listing whenever a file is added or removed:
//
//	go generate ./src/resources/certs
package certs
