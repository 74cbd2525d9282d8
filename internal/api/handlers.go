package api

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alexanderramin/jornada/internal/domain"
)

// sessionResponse is the wire form of a work session. Field names match the
// persisted attribute names; absent instants and totals encode as null.
type sessionResponse struct {
	ID                string     `json:"id"`
	Date              string     `json:"date"`
	StartTime         time.Time  `json:"startTime"`
	BreakfastStart    *time.Time `json:"breakfastStart"`
	BreakfastEnd      *time.Time `json:"breakfastEnd"`
	SnackStart        *time.Time `json:"snackStart"`
	SnackEnd          *time.Time `json:"snackEnd"`
	EndTime           *time.Time `json:"endTime"`
	Status            string     `json:"status"`
	TotalWorkMinutes  *int       `json:"totalWorkMinutes"`
	TotalBreakMinutes *int       `json:"totalBreakMinutes"`
	ActualWorkMinutes *int       `json:"actualWorkMinutes"`
}

func toResponse(s *domain.WorkSession) sessionResponse {
	return sessionResponse{
		ID:                s.ID,
		Date:              s.Date,
		StartTime:         s.StartTime,
		BreakfastStart:    s.BreakfastStart,
		BreakfastEnd:      s.BreakfastEnd,
		SnackStart:        s.SnackStart,
		SnackEnd:          s.SnackEnd,
		EndTime:           s.EndTime,
		Status:            string(s.Status),
		TotalWorkMinutes:  s.TotalWorkMinutes,
		TotalBreakMinutes: s.TotalBreakMinutes,
		ActualWorkMinutes: s.ActualWorkMinutes,
	}
}

func toResponses(sessions []*domain.WorkSession) []sessionResponse {
	out := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toResponse(s))
	}
	return out
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	sess, err := s.clock.Start(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(sess))
}

// transitionHandler adapts one lifecycle transition to an HTTP handler.
func (s *Server) transitionHandler(apply func(ctx context.Context, id string) (*domain.WorkSession, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := apply(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(sess))
	}
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	sess, err := s.clock.Today(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if sess == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(sess))
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	if startDate != "" && endDate != "" {
		if !datePattern.MatchString(startDate) || !datePattern.MatchString(endDate) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "dates must be YYYY-MM-DD"})
			return
		}
		sessions, err := s.history.ListBetween(r.Context(), startDate, endDate)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponses(sessions))
		return
	}

	sessions, err := s.history.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponses(sessions))
}

func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	deleted, cutoff, err := s.retention.Sweep(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"deletedCount": deleted,
		"cutoffDate":   cutoff,
	})
}
