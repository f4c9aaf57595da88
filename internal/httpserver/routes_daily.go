// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes two endpoints under /daily:
//   - GET  /daily     → today's date key and grid size
//   - POST /daily/new → start a game against today's word
//
// The word is derived from the UTC date and the configured salt, so every
// client gets the same target on the same day. Nothing is persisted.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordgrid/internal/daily"
	"github.com/robalobadob/wordgrid/internal/session"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/new", s.handleDailyNew)
	})
}

// dailyInfoRes is returned by GET /daily.
type dailyInfoRes struct {
	Date string `json:"date"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
}

func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if s.factory.Now != nil {
		now = s.factory.Now
	}
	writeJSON(w, http.StatusOK, dailyInfoRes{
		Date: daily.DateKey(now()),
		Rows: s.factory.Rows,
		Cols: s.factory.Cols,
	})
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	s.startGame(w, r, session.Options{Daily: true})
}
