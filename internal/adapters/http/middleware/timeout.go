package middleware

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
)

// Timeout bounds each request by d. The handler runs on its own goroutine
// against a buffered response and a context that expires with the request,
// so an entry store lookup still in flight is canceled. If d elapses first
// the client gets a 504 problem and later handler writes fail with
// http.ErrHandlerTimeout. A handler panic is re-raised on the serving
// goroutine so Recovery still sees it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &bufferedResponse{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)
			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
				close(done)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				buf.commit(w)
			case <-ctx.Done():
				if !buf.expire() {
					return
				}
				logging.FromContext(r.Context()).WarnContext(r.Context(), "request timed out",
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", d),
				)
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", d, ctx.Err()))
			}
		})
	}
}

// bufferedResponse holds a handler's response until Timeout decides
// whether it or a 504 reaches the client.
type bufferedResponse struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	expired bool
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 {
		b.status = status
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

// expire rejects further writes. It reports false when the handler has
// already committed to a status, in which case no 504 is written and the
// partial response is dropped.
func (b *bufferedResponse) expire() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expired = true
	return b.status == 0
}

func (b *bufferedResponse) commit(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	_, _ = b.body.WriteTo(w)
}
