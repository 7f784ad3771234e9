// Package health runs the dependency checks behind the readiness endpoint.
package health

import (
	"context"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/timesheet-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

const defaultCheckTimeout = 2 * time.Second

type entry struct {
	name    string
	checker ports.HealthChecker
}

// Registry holds the checkers consulted on each readiness check. It is safe
// for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	timeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each check. Non-positive values keep the 2s
// default.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: defaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker under its Name. Registering a second checker with
// the same name replaces the first.
func (r *Registry) Register(checker ports.HealthChecker) {
	e := entry{name: checker.Name(), checker: checker}

	r.mu.Lock()
	defer r.mu.Unlock()
	if i := slices.IndexFunc(r.entries, func(x entry) bool { return x.name == e.name }); i >= 0 {
		r.entries[i] = e
		return
	}
	r.entries = append(r.entries, e)
}

// CheckAll runs every check concurrently, each under its own timeout, and
// returns the outcome by name. A nil value means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	entries := slices.Clone(r.entries)
	timeout := r.timeout
	r.mu.RUnlock()

	outcomes := make([]error, len(entries))
	var g errgroup.Group
	for i, e := range entries {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			outcomes[i] = e.checker.HealthCheck(ctx)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(entries))
	for i, e := range entries {
		results[e.name] = outcomes[i]
	}
	return results
}
