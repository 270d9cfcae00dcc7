package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/junhyuk/worddrill/internal/services"
)

// Server is the HTTP presentation boundary. It exposes the drill
// workflow as a small JSON surface; everything behind it is the
// service layer.
type Server struct {
	DrillService services.DrillService
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/day", s.handleToday)
	r.Post("/day/select", s.handleSelectDay)
	r.Get("/day/{day}/words", s.handleDayWords)
	r.Post("/day/{day}/submit", s.handleSubmit)
	r.Get("/day/{day}/notes", s.handleDayNotes)
	r.Get("/notes/days", s.handleNoteDays)
	r.Get("/review/{week}", s.handleReviewWeek)
	r.Get("/history", s.handleHistory)

	return r
}
