// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package prefs provides namespaced string key/value preference stores.
//
// A missing namespace or key is a normal outcome reported through the boolean
// result of [Store.Get], never as an error.
package prefs
