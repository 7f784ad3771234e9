package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/timesheet-service/internal/adapters/http"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/config"
)

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		port int
		want string
	}{
		{"127.0.0.1", 9090, "127.0.0.1:9090"},
		{"", 8080, ":8080"},
		{"::1", 8080, "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			s := adapthttp.NewServer(config.ServerConfig{Host: tt.host, Port: tt.port}, http.NotFoundHandler(), nil)
			if got := s.Addr(); got != tt.want {
				t.Errorf("Addr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServer_ServeAndDrain(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_, _ = io.WriteString(w, `{"is_valid":true}`)
	})
	s := adapthttp.NewServer(config.ServerConfig{
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}, handler, slog.New(slog.DiscardHandler))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	served := make(chan error, 1)
	go func() { served <- s.Serve(ln) }()

	type reply struct {
		body string
		err  error
	}
	replies := make(chan reply, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/api/v1/timesheet-entries/validate")
		if err != nil {
			replies <- reply{err: err}
			return
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		replies <- reply{body: string(b), err: err}
	}()

	// Let the request reach the handler before draining.
	time.Sleep(50 * time.Millisecond)
	drained := make(chan error, 1)
	go func() { drained <- s.Shutdown(context.Background()) }()
	time.Sleep(20 * time.Millisecond)
	close(release)

	if r := <-replies; r.err != nil || r.body != `{"is_valid":true}` {
		t.Errorf("in-flight request = %q, %v; want it completed", r.body, r.err)
	}
	if err := <-drained; err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if err := <-served; err != nil {
		t.Errorf("Serve() error = %v, want nil after shutdown", err)
	}
}

func TestServer_StartFailsOnBadAddress(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: -1}, http.NotFoundHandler(), nil)
	if err := s.Start(); err == nil {
		t.Error("Start() error = nil, want listen failure")
	}
}
