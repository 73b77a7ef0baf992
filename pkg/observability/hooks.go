// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline execution.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface per event category
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnNormalizeStart(ctx)
//	// ... decode and validate ...
//	observability.Pipeline().OnNormalizeComplete(ctx, individuals, relationships, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the render pipeline. Each stage emits a
// Start event before it runs and a Complete event with its duration and error
// after it finishes.
type PipelineHooks interface {
	// Normalize events: raw record decode and validation.
	OnNormalizeStart(ctx context.Context)
	OnNormalizeComplete(ctx context.Context, individuals, relationships int, duration time.Duration, err error)

	// Generation assignment events.
	OnGenerationsStart(ctx context.Context, individuals int)
	OnGenerationsComplete(ctx context.Context, generations int, duration time.Duration, err error)

	// Scene render events: layout plus element emission.
	OnRenderStart(ctx context.Context, individuals int)
	OnRenderComplete(ctx context.Context, width, height float64, duration time.Duration, err error)

	// Artifact encode events, one per pipeline run covering all formats.
	OnEncodeStart(ctx context.Context, formats []string)
	OnEncodeComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnNormalizeStart(context.Context) {}
func (NoopPipelineHooks) OnNormalizeComplete(context.Context, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnGenerationsStart(context.Context, int)                          {}
func (NoopPipelineHooks) OnGenerationsComplete(context.Context, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, int)                               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, float64, float64, time.Duration, error) {
}
func (NoopPipelineHooks) OnEncodeStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnEncodeComplete(context.Context, []string, time.Duration, error) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
