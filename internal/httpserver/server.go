package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/swift-scribe/internal/config"
	"github.com/nguyentantai21042004/swift-scribe/internal/logger"
	"github.com/nguyentantai21042004/swift-scribe/internal/summarizer"
	"github.com/nguyentantai21042004/swift-scribe/internal/transcriber"
)

// Server is the HTTP boundary: it validates input, runs the summarizer and
// maps errors to status codes.
type Server struct {
	summarizer  summarizer.Summarizer
	transcriber transcriber.Transcriber
	logger      logger.Logger

	addr            string
	maxBodyBytes    int64
	maxUploadBytes  int64
	shutdownTimeout time.Duration
}

func New(cfg config.ServerConfig, sum summarizer.Summarizer, tr transcriber.Transcriber, log logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		summarizer:      sum,
		transcriber:     tr,
		logger:          log,
		addr:            cfg.Addr,
		maxBodyBytes:    cfg.MaxBodyBytes,
		maxUploadBytes:  cfg.MaxUploadBytes,
		shutdownTimeout: time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	mux.HandleFunc("POST /summarize", s.handleSummarize)
	mux.HandleFunc("POST /transcribe-summarize", s.handleTranscribeSummarize)

	// Everything else, including wrong methods on known paths.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeText(w, http.StatusNotFound, "Not found")
	})

	return s.withRequestID(mux)
}

// ListenAndServe serves on the configured address until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Serve(ln)
	}()
	s.logger.Info(ctx, "HTTP server listening on %s", ln.Addr())

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errChan; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
