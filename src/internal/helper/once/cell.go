// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package once

import "sync"

// Cell holds a value computed at most once successfully.
//
// The zero value is ready to use. A Cell must not be copied after first use.
//
// Thread Safety: Safe for concurrent use. Callers that arrive while a computation
// is running block until it finishes and then observe its outcome.
type Cell[T any] struct {
	mu       sync.Mutex
	done     bool
	value    T
	attempts int
}

// Get returns the memoized value, running compute if no value has been stored yet.
//
// At most one compute runs at a time. A nil error stores the result permanently;
// a non-nil error is returned to the caller that ran compute and leaves the cell
// empty, so the next Get runs compute again. Callers that were waiting on a failed
// computation run their own attempt in turn.
func (c *Cell[T]) Get(compute func() (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done {
		return c.value, nil
	}

	c.attempts++
	v, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	c.value = v
	c.done = true
	return v, nil
}

// Loaded reports whether a value has been stored.
func (c *Cell[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Attempts reports how many times compute has been invoked, successful or not.
func (c *Cell[T]) Attempts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attempts
}
