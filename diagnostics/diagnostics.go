// Package diagnostics provides the optional, non-fatal diagnostic hook the
// spec calls for when a predictor "cannot produce" (e.g. Sequential or
// Stride over keys that aren't one of the common integer kinds). It is not
// part of the cache's control flow: a nil Hook simply means silence.
package diagnostics

import (
	"sync"

	"go.uber.org/zap"
)

// Hook receives a one-line diagnostic about a degraded predictor or policy.
// source identifies the component (e.g. "predictor/sequential"); reason is
// a short, stable machine-checkable string (e.g. "unordered-key").
type Hook interface {
	Notify(source, reason string)
}

// Noop discards every notification. It is the default when no Hook is
// configured.
type Noop struct{}

// Notify implements Hook.
func (Noop) Notify(string, string) {}

// zapHook logs each distinct (source, reason) pair at most once, matching
// the spec's "logs once" contract, using the structured logger the example
// pack's flare-go-ember cache reaches for around its own prefetch failures.
type zapHook struct {
	log *zap.Logger

	mu   sync.Mutex
	seen map[string]struct{}
}

// NewZap wraps a *zap.Logger as a Hook. If log is nil, zap.NewNop() is used.
func NewZap(log *zap.Logger) Hook {
	if log == nil {
		log = zap.NewNop()
	}
	return &zapHook{log: log, seen: make(map[string]struct{})}
}

// Notify implements Hook.
func (h *zapHook) Notify(source, reason string) {
	key := source + "\x00" + reason
	h.mu.Lock()
	_, already := h.seen[key]
	if !already {
		h.seen[key] = struct{}{}
	}
	h.mu.Unlock()
	if already {
		return
	}
	h.log.Warn("fulgurance: degraded",
		zap.String("source", source),
		zap.String("reason", reason),
	)
}
