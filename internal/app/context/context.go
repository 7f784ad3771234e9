// Package appctx memoizes reads for the lifetime of one request.
//
// The HTTP middleware and the CLI attach a RequestContext to every inbound
// request. Two entries of one batch that share a duplicate-detection key then
// cost a single store lookup:
//
//	ctx = appctx.WithRequestContext(ctx, appctx.New(ctx))
//	match, err := appctx.GetOrFetch(ctx, appctx.FromContext(ctx), key, lookup)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrTypeMismatch means one key was fetched as two different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext is a per-request memo table. It is safe for the goroutines
// of a single request; concurrent fetches of one key share a call.
type RequestContext struct {
	context.Context

	mu      sync.Mutex
	results map[string]result
	inbound singleflight.Group
}

// result is a finished fetch. Errors are remembered as well as values.
type result struct {
	value any
	err   error
}

func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, results: make(map[string]result)}
}

type ctxKey struct{}

func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the attached RequestContext, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(ctxKey{}).(*RequestContext)
	return rc
}

// GetOrFetch returns the remembered result for key, calling fetch on the
// first request for it. A nil rc disables memoization.
func GetOrFetch[T any](ctx context.Context, rc *RequestContext, key string, fetch func(context.Context) (T, error)) (T, error) {
	if rc == nil {
		return fetch(ctx)
	}

	res, ok := rc.lookup(key)
	if !ok {
		v, err, _ := rc.inbound.Do(key, func() (any, error) {
			if done, hit := rc.lookup(key); hit {
				return done.value, done.err
			}
			v, err := fetch(ctx)
			rc.store(key, result{value: v, err: err})
			return v, err
		})
		res = result{value: v, err: err}
	}

	var zero T
	if res.err != nil {
		return zero, res.err
	}
	v, ok := res.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, res.value, zero)
	}
	return v, nil
}

// Len reports how many keys have a remembered result.
func (rc *RequestContext) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.results)
}

func (rc *RequestContext) lookup(key string) (result, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	r, ok := rc.results[key]
	return r, ok
}

func (rc *RequestContext) store(key string, r result) {
	rc.mu.Lock()
	rc.results[key] = r
	rc.mu.Unlock()
}
