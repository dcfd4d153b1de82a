//go:build dev

// Package trace provides runtime tracing for development builds.
//
// Usage:
//
//	WSFIND_TRACE=trace.out wsfind --folder ~/work --query api
//	go tool trace trace.out
package trace

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/trace"
	"sync"
)

var (
	traceFile   *os.File
	traceMu     sync.Mutex
	traceActive bool
)

// Init starts tracing when WSFIND_TRACE names an output file.
// Notices go to stderr. The returned cleanup must be deferred.
func Init(stderr io.Writer) func() {
	tracePath := os.Getenv("WSFIND_TRACE")
	if tracePath == "" {
		return func() {}
	}

	traceMu.Lock()
	defer traceMu.Unlock()

	var err error
	traceFile, err = os.Create(tracePath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "wsfind: failed to create trace file %s: %v\n", tracePath, err)
		return func() {}
	}

	if err := trace.Start(traceFile); err != nil {
		_, _ = fmt.Fprintf(stderr, "wsfind: failed to start trace: %v\n", err)
		_ = traceFile.Close()
		traceFile = nil
		return func() {}
	}

	traceActive = true
	_, _ = fmt.Fprintf(stderr, "wsfind: tracing to %s\n", tracePath)

	return func() {
		traceMu.Lock()
		defer traceMu.Unlock()

		if traceActive {
			trace.Stop()
			traceActive = false
		}
		if traceFile != nil {
			_ = traceFile.Close()
			traceFile = nil
		}
	}
}

// Region starts a trace region and returns the function that ends it
func Region(ctx context.Context, regionType string) func() {
	if !traceActive {
		return func() {}
	}
	return trace.StartRegion(ctx, regionType).End
}

// WithRegion executes f within a trace region
func WithRegion(ctx context.Context, regionType string, f func()) {
	if traceActive {
		trace.WithRegion(ctx, regionType, f)
	} else {
		f()
	}
}

// IsEnabled reports whether a trace is being recorded
func IsEnabled() bool {
	return traceActive
}
