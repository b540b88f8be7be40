package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"quantum-tutor/internal/infra/logging"
	"quantum-tutor/internal/usecase"
)

// Server hosts the tutor session over HTTP: the dashboard page plus the
// /chat, /clear, /progress and /stats operations.
type Server struct {
	tutor usecase.TutorUseCase
	log   *zerolog.Logger

	// The session core assumes one caller at a time; this lock serializes
	// concurrent requests against the single session.
	mu sync.Mutex
}

func NewServer(tutor usecase.TutorUseCase, logger *zerolog.Logger) *Server {
	return &Server{tutor: tutor, log: logger}
}

// Router builds the chi router for the dashboard and session endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/chat", s.handleChat)
	r.Post("/clear", s.handleClear)
	r.Get("/progress", s.handleProgress)
	r.Get("/stats", s.handleStats)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// requestContext applies the request-level timeout the core itself does not
// impose, and threads the request id into the log context.
func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx := r.Context()
	if id := middleware.GetReqID(ctx); id != "" {
		ctx = logging.WithTraceID(ctx, id)
	}
	return context.WithTimeout(ctx, 60*time.Second)
}
