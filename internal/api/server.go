// Package api exposes the work-session lifecycle over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexanderramin/jornada/internal/log"
	"github.com/alexanderramin/jornada/internal/service"
)

// Server holds the service dependencies of the HTTP surface. It is a thin
// collaborator: every route maps onto exactly one service call.
type Server struct {
	clock     service.ClockService
	history   service.HistoryService
	retention service.RetentionService
}

// NewServer creates the HTTP server around the given services.
func NewServer(clock service.ClockService, history service.HistoryService, retention service.RetentionService) *Server {
	return &Server{clock: clock, history: history, retention: retention}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/start", s.handleStart)
		r.Get("/today", s.handleToday)
		r.Get("/", s.handleList)
		r.Post("/cleanup", s.handleCleanup)

		r.Route("/{id}", func(r chi.Router) {
			r.Patch("/breakfast-start", s.transitionHandler(s.clock.StartBreakfast))
			r.Patch("/breakfast-end", s.transitionHandler(s.clock.EndBreakfast))
			r.Patch("/snack-start", s.transitionHandler(s.clock.StartSnack))
			r.Patch("/snack-end", s.transitionHandler(s.clock.EndSnack))
			r.Patch("/end", s.transitionHandler(s.clock.End))
		})
	})

	return r
}

// requestLogger emits one structured line per request.
func requestLogger(next http.Handler) http.Handler {
	logger := log.WithComponent("api")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
