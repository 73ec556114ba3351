// Package observability provides hooks for logging and metrics.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about gestures and board file I/O.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the geometry and
// gesture packages stay free of logging backends.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGestureHooks(&myGestureHooks{})
//	    observability.SetBoardHooks(&myBoardHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Gesture().OnGestureStart(ctx, "move", blockID)
//	// ... frames ...
//	observability.Gesture().OnGestureEnd(ctx, "move", blockID, frames, duration, true)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Gesture Hooks
// =============================================================================

// GestureHooks receives events from interactive move, resize and rotate
// gestures.
type GestureHooks interface {
	// OnGestureStart records the pointer going down on a block.
	OnGestureStart(ctx context.Context, kind, blockID string)

	// OnFrame records one pointer update and the guides it produced.
	OnFrame(ctx context.Context, kind, blockID string, guides int)

	// OnGestureEnd records a commit or a cancel.
	OnGestureEnd(ctx context.Context, kind, blockID string, frames int, duration time.Duration, committed bool)
}

// =============================================================================
// Board Hooks
// =============================================================================

// BoardHooks receives events from board file I/O.
type BoardHooks interface {
	// OnBoardLoad records a board read from path.
	OnBoardLoad(ctx context.Context, path string, blocks int, duration time.Duration, err error)

	// OnBoardSave records a board written to path.
	OnBoardSave(ctx context.Context, path string, blocks int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGestureHooks is a no-op implementation of GestureHooks.
type NoopGestureHooks struct{}

func (NoopGestureHooks) OnGestureStart(context.Context, string, string) {}
func (NoopGestureHooks) OnFrame(context.Context, string, string, int)   {}
func (NoopGestureHooks) OnGestureEnd(context.Context, string, string, int, time.Duration, bool) {
}

// NoopBoardHooks is a no-op implementation of BoardHooks.
type NoopBoardHooks struct{}

func (NoopBoardHooks) OnBoardLoad(context.Context, string, int, time.Duration, error) {}
func (NoopBoardHooks) OnBoardSave(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gestureHooks GestureHooks = NoopGestureHooks{}
	boardHooks   BoardHooks   = NoopBoardHooks{}
	hooksMu      sync.RWMutex
)

// SetGestureHooks registers custom gesture hooks.
// This should be called once at application startup before any gestures run.
func SetGestureHooks(h GestureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gestureHooks = h
	}
}

// SetBoardHooks registers custom board I/O hooks.
func SetBoardHooks(h BoardHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		boardHooks = h
	}
}

// Gesture returns the registered gesture hooks.
func Gesture() GestureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gestureHooks
}

// Board returns the registered board I/O hooks.
func Board() BoardHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return boardHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gestureHooks = NoopGestureHooks{}
	boardHooks = NoopBoardHooks{}
}
