package testutil

import (
	"context"
	"net/http"
	"sync"
)

// StubHTTPServer implements the server package's httpServer for tests.
// ListenAndServe returns ListenErr immediately. When Block is set, Shutdown
// waits for it to close or for the context to expire.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Block       chan struct{}

	mu            sync.Mutex
	listenCalls   int
	shutdownCalls int
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.listenCalls++
	s.mu.Unlock()
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdownCalls++
	s.mu.Unlock()
	if s.Block == nil {
		return s.ShutdownErr
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.Block:
		return s.ShutdownErr
	}
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NewServeMux()
	}
	return s.HandlerVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listenCalls
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdownCalls
}
