package session

import (
	"math/rand"
	"sync"
	"time"

	"github.com/junhyuk/worddrill/internal/models"
	"github.com/junhyuk/worddrill/internal/scheduler"
)

// DayState tracks where one day's quiz sits in its lifecycle.
type DayState int

const (
	NotStarted DayState = iota
	InProgress
	Submitted
	Recorded
)

func (s DayState) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Submitted:
		return "submitted"
	case Recorded:
		return "recorded"
	default:
		return "unknown"
	}
}

// Session holds all state that lives exactly as long as the process:
// the current day pointer, the memoized review selections, the score
// history for charting, and the per-day quiz state machine. Nothing in
// here is durable; persistence happens only through explicit store
// calls made by the service layer.
//
// The mutex exists because the HTTP surface serves requests
// concurrently even though the tool is single-user.
type Session struct {
	mu      sync.Mutex
	day     int
	rng     *rand.Rand
	reviews map[scheduler.ReviewKey][]models.WordEntry
	scores  []models.ScoreEntry
	states  map[int]DayState
}

// New creates a session starting at the given day, normally the value
// read from the progress store.
func New(startDay int) *Session {
	if startDay < 1 {
		startDay = 1
	}
	return &Session{
		day:     startDay,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		reviews: make(map[scheduler.ReviewKey][]models.WordEntry),
		states:  make(map[int]DayState),
	}
}

// Day returns the current day pointer.
func (s *Session) Day() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.day
}

// SetDay moves the day pointer. Values below 1 clamp to 1.
func (s *Session) SetDay(day int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if day < 1 {
		day = 1
	}
	s.day = day
}

// Advance moves the day pointer forward by one.
func (s *Session) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.day++
}

// ReviewSelection returns the memoized selection for key, computing it
// with compute on first access. Every later access within this session
// returns the identical slice, so a selection never reshuffles between
// rendering and grading.
func (s *Session) ReviewSelection(key scheduler.ReviewKey, compute func(rng *rand.Rand) []models.WordEntry) []models.WordEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sel, ok := s.reviews[key]; ok {
		return sel
	}
	sel := compute(s.rng)
	s.reviews[key] = sel
	return sel
}

// RecordScore appends one quiz result to the session history.
func (s *Session) RecordScore(entry models.ScoreEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = append(s.scores, entry)
}

// History returns a copy of the session's score history in recording
// order.
func (s *Session) History() []models.ScoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ScoreEntry, len(s.scores))
	copy(out, s.scores)
	return out
}

// State returns the quiz state for day.
func (s *Session) State(day int) DayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[day]
}

// MarkInProgress moves day to InProgress unless it is already past it.
func (s *Session) MarkInProgress(day int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.states[day] == NotStarted {
		s.states[day] = InProgress
	}
}

// MarkSubmitted moves day to Submitted unless it is already Recorded.
func (s *Session) MarkSubmitted(day int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.states[day] != Recorded {
		s.states[day] = Submitted
	}
}

// MarkRecorded moves day to its terminal Recorded state. It reports
// false if the day was already recorded, which is the double-submit
// guard: the first caller wins, later persists must be refused.
func (s *Session) MarkRecorded(day int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.states[day] == Recorded {
		return false
	}
	s.states[day] = Recorded
	return true
}

// ResetToSubmitted drops a Recorded day back to Submitted. Used when
// persistence failed after the Recorded slot was claimed, so the user
// can retry the submit.
func (s *Session) ResetToSubmitted(day int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.states[day] == Recorded {
		s.states[day] = Submitted
	}
}
