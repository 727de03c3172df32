package httpserver

import (
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/nguyentantai21042004/swift-scribe/internal/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestID tags each request with a ULID, echoes it in X-Request-ID and
// logs the outcome.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		id := ulid.Make().String()
		ctx := logger.WithRequestID(r.Context(), id)

		w.Header().Set("X-Request-ID", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		s.logger.Info(ctx, "%s %s -> %d in %s", r.Method, r.URL.Path, rec.status, time.Since(startTime).Round(time.Millisecond))
	})
}
