//go:build !dev

// Package trace provides runtime tracing for development builds.
// Release builds get no-op stubs.
package trace

import (
	"context"
	"io"
)

// Init is a no-op in release builds
func Init(_ io.Writer) func() {
	return func() {}
}

// Region is a no-op in release builds
func Region(_ context.Context, _ string) func() {
	return func() {}
}

// WithRegion just calls f in release builds
func WithRegion(_ context.Context, _ string, f func()) {
	f()
}

// IsEnabled always returns false in release builds
func IsEnabled() bool {
	return false
}
