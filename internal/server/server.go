// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/cloudscale/cloudscale/internal/log"
	"github.com/cloudscale/cloudscale/internal/page"
	"github.com/cloudscale/cloudscale/internal/render/html"
)

const (
	DefaultAddr            = "127.0.0.1:8080"
	DefaultShutdownTimeout = 5 * time.Second
)

// NewHandler renders root once and returns the routes that serve it.
func NewHandler(root *page.Root, opts html.Options) (http.Handler, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, root, opts); err != nil {
		return nil, err
	}
	doc := buf.Bytes()
	log.Debugf("page rendered: size=%s", humanize.Bytes(uint64(len(doc))))

	mux := http.NewServeMux()
	servePage := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(doc)
	}
	mux.HandleFunc("GET /{$}", servePage)
	mux.HandleFunc("GET /index.html", servePage)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(html.Static())))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	return logRequests(mux), nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debugf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// Server serves a page root until its context is done.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
	Handler         http.Handler
}

// New builds a Server for root.
func New(root *page.Root, addr string, shutdown time.Duration, opts html.Options) (*Server, error) {
	h, err := NewHandler(root, opts)
	if err != nil {
		return nil, err
	}
	if addr == "" {
		addr = DefaultAddr
	}
	if shutdown <= 0 {
		shutdown = DefaultShutdownTimeout
	}
	return &Server{Addr: addr, ShutdownTimeout: shutdown, Handler: h}, nil
}

// ListenAndServe listens on s.Addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("serving on http://%s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := s.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Infof("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = srv.Close()
		return fmt.Errorf("shutdown: %w", err)
	}
	<-errCh
	return nil
}
