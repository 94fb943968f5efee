// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about drag-and-drop interaction and the HTTP driver.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// [Counters] is a ready-made implementation that tallies events.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    stats := observability.NewCounters()
//	    observability.SetDnDHooks(stats)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.DnD().OnOperation("NONE", "COLUMN_RESIZE_PENDING")
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// DnD Hooks
// =============================================================================

// DnDHooks receives events from the grid drag-and-drop engine.
// Hooks run synchronously on the event thread and must not block.
type DnDHooks interface {
	// OnOperation records a state machine transition.
	OnOperation(from, to string)

	// OnColumnResized records a committed width change.
	OnColumnResized(columnID string, width float64)

	// OnColumnsMoved records a committed column block move.
	OnColumnsMoved(columnIDs []string, index int)

	// OnRowsMoved records a committed row move.
	OnRowsMoved(rowIDs []string, index int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the headless HTTP driver.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(method, path string)

	// OnResponse records the response sent for a request.
	OnResponse(method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDnDHooks is a no-op implementation of DnDHooks.
type NoopDnDHooks struct{}

func (NoopDnDHooks) OnOperation(string, string)      {}
func (NoopDnDHooks) OnColumnResized(string, float64) {}
func (NoopDnDHooks) OnColumnsMoved([]string, int)    {}
func (NoopDnDHooks) OnRowsMoved([]string, int)       {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(string, string)                      {}
func (NoopHTTPHooks) OnResponse(string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	dndHooks  DnDHooks  = NoopDnDHooks{}
	httpHooks HTTPHooks = NoopHTTPHooks{}
	hooksMu   sync.RWMutex
)

// SetDnDHooks registers custom drag-and-drop hooks.
// This should be called once at application startup before any pointer handling.
func SetDnDHooks(h DnDHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dndHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// DnD returns the registered drag-and-drop hooks.
func DnD() DnDHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dndHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	dndHooks = NoopDnDHooks{}
	httpHooks = NoopHTTPHooks{}
}
