package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/junhyuk/worddrill/internal/errors"
	"github.com/junhyuk/worddrill/internal/logger"
	"github.com/junhyuk/worddrill/internal/models"
)

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	batch, err := s.DrillService.Today(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, batch)
}

func (s *Server) handleDayWords(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	batch, err := s.DrillService.BatchForDay(r.Context(), day)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, batch)
}

type submitRequest struct {
	Answers map[string]string `json:"answers"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	day, err := dayParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid submit body: %v", err)
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	// JSON object keys are strings; answers are keyed by batch index.
	answers := make(map[int]string, len(req.Answers))
	for k, v := range req.Answers {
		idx, err := strconv.Atoi(k)
		if err != nil {
			handleError(w, r, errors.NewBadRequestError("answer keys must be batch indexes"))
			return
		}
		answers[idx] = v
	}

	result, err := s.DrillService.Submit(r.Context(), day, answers)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleDayNotes(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	notes, err := s.DrillService.NotesForDay(r.Context(), day)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if notes == nil {
		notes = []models.IncorrectNote{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"day":   day,
		"notes": notes,
	})
}

func (s *Server) handleNoteDays(w http.ResponseWriter, r *http.Request) {
	days, err := s.DrillService.DaysWithNotes(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if days == nil {
		days = []int{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"days": days})
}

func (s *Server) handleReviewWeek(w http.ResponseWriter, r *http.Request) {
	weekStr := chi.URLParam(r, "week")
	week, err := strconv.Atoi(weekStr)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid week"))
		return
	}

	words, err := s.DrillService.ReviewWeek(r.Context(), week)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if words == nil {
		words = []models.WordEntry{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"week":  week,
		"words": words,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	history := s.DrillService.History()
	if history == nil {
		history = []models.ScoreEntry{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"history": history})
}

type selectDayRequest struct {
	Day int `json:"day"`
}

func (s *Server) handleSelectDay(w http.ResponseWriter, r *http.Request) {
	var req selectDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	if err := s.DrillService.SelectDay(req.Day); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"day": req.Day})
}

func dayParam(r *http.Request) (int, error) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		return 0, errors.NewBadRequestError("invalid day")
	}
	return day, nil
}
