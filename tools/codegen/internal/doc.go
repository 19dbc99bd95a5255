// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package codegen generates the bundled certificate registry table.
//
// It lists the certificate files of a resource directory in lexical order and
// renders them as an ordered slice of trust.Resource values. The generated
// table fixes both the IDs and the declaration order the trust aggregator
// walks at runtime.
package codegen
