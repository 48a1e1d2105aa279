// Package observability provides hooks for instrumenting HTTP calls.
//
// The core library stays dependency-free from observability frameworks:
// it emits events through a small hook interface with a no-op default,
// and consumers register a real implementation at startup.
//
// # Usage
//
// Register hooks once, before any fetches:
//
//	func main() {
//	    observability.SetHTTPHooks(&myHooks{})
//	    // ... run application
//	}
//
// The library calls hooks around every outbound request:
//
//	observability.HTTP().OnRequest(ctx, "GET", host, path)
//	// ... perform request ...
//	observability.HTTP().OnResponse(ctx, "GET", host, path, code, elapsed)
package observability

import (
	"context"
	"sync"
	"time"
)

// HTTPHooks receives events from outbound HTTP requests.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records a received HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records a transport-level failure (network error, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

var (
	httpHooks HTTPHooks = NoopHTTPHooks{}
	hooksMu   sync.RWMutex
)

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any fetches.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	httpHooks = NoopHTTPHooks{}
}
