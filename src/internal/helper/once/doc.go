// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package once provides a compute-once cell whose failed computations are retried.
//
// Unlike [sync.Once], a [Cell] only memoizes a successful result, so a transient
// failure during the first computation does not poison the cell for the
// remaining lifetime of the process.
package once
