// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package relcat

// Result carries either a value or the reason it could not be produced
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successfully produced value
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failed wraps the reason a value could not be produced
func Failed[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Unwrap returns the value and the failure reason, if any
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Err returns the failure reason, nil on success
func (r Result[T]) Err() error {
	return r.err
}

// Or returns the value on success, fallback otherwise
func (r Result[T]) Or(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}
