// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"path/filepath"
	"strings"
)

// ExecutableName returns the base name of argv0 without a trailing .exe,
// or fallback when argv0 is empty.
//
// Both '/' and '\' are treated as separators so a Windows path still yields
// a clean name on Unix-like systems and vice versa.
func ExecutableName(argv0, fallback string) string {
	if argv0 == "" {
		return fallback
	}

	name := filepath.Base(argv0)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	name = strings.TrimSuffix(name, ".exe")
	if name == "" || name == "." {
		return fallback
	}
	return name
}
