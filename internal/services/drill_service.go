package services

import (
	"context"
	"math/rand"

	"github.com/junhyuk/worddrill/internal/catalog"
	"github.com/junhyuk/worddrill/internal/errors"
	"github.com/junhyuk/worddrill/internal/logger"
	"github.com/junhyuk/worddrill/internal/models"
	"github.com/junhyuk/worddrill/internal/quiz"
	"github.com/junhyuk/worddrill/internal/repository"
	"github.com/junhyuk/worddrill/internal/scheduler"
	"github.com/junhyuk/worddrill/internal/session"
)

// DayBatch is one day's quiz material, review material included.
type DayBatch struct {
	Day         int                `json:"day"`
	Words       []models.WordEntry `json:"words"`
	NewCount    int                `json:"new_count"`
	ReviewCount int                `json:"review_count"`
	ReviewDay   bool               `json:"review_day"`
	State       string             `json:"state"`
}

// SubmitResult is the outcome of grading and recording one day.
type SubmitResult struct {
	Day       int                      `json:"day"`
	Score     int                      `json:"score"`
	Total     int                      `json:"total"`
	Incorrect []models.IncorrectAnswer `json:"incorrect"`
	NextDay   int                      `json:"next_day"`
}

// DrillService handles the quiz workflow: building day batches,
// grading submissions, recording progress and browsing past mistakes.
type DrillService interface {
	Today(ctx context.Context) (*DayBatch, error)
	BatchForDay(ctx context.Context, day int) (*DayBatch, error)
	Submit(ctx context.Context, day int, answers map[int]string) (*SubmitResult, error)
	ReviewWeek(ctx context.Context, week int) ([]models.WordEntry, error)
	NotesForDay(ctx context.Context, day int) ([]models.IncorrectNote, error)
	DaysWithNotes(ctx context.Context) ([]int, error)
	History() []models.ScoreEntry
	SelectDay(day int) error
}

// Options carries the scheduling knobs from configuration.
type Options struct {
	WordsPerDay     int
	ReviewCount     int
	ReviewCycleDays int
	Policy          scheduler.Policy
}

type drillService struct {
	cat      *catalog.Catalog
	sess     *session.Session
	progress repository.ProgressRepository
	notes    repository.NoteRepository
	opts     Options
}

// NewDrillService creates a new DrillService
func NewDrillService(cat *catalog.Catalog, sess *session.Session, progress repository.ProgressRepository, notes repository.NoteRepository, opts Options) DrillService {
	return &drillService{
		cat:      cat,
		sess:     sess,
		progress: progress,
		notes:    notes,
		opts:     opts,
	}
}

func (s *drillService) Today(ctx context.Context) (*DayBatch, error) {
	return s.BatchForDay(ctx, s.sess.Day())
}

func (s *drillService) BatchForDay(ctx context.Context, day int) (*DayBatch, error) {
	log := logger.FromContext(ctx)

	if day < 1 {
		return nil, errors.NewValidationError("day", "must be at least 1")
	}

	batch := s.assemble(day)
	log.Debug("batch for day %d: %d new, %d review, review_day=%t",
		day, batch.NewCount, batch.ReviewCount, batch.ReviewDay)

	if len(batch.Words) > 0 && s.sess.State(day) == session.NotStarted {
		s.sess.MarkInProgress(day)
		batch.State = s.sess.State(day).String()
	}
	return batch, nil
}

// assemble builds day's batch under the configured policy. Random
// selections are memoized in the session, so repeated calls for the
// same day return the identical words in the identical order.
func (s *drillService) assemble(day int) *DayBatch {
	batch := &DayBatch{
		Day:   day,
		State: s.sess.State(day).String(),
	}

	if s.opts.Policy == scheduler.WeeklyReviewBlock && scheduler.IsReviewDay(day, s.opts.ReviewCycleDays) {
		week := scheduler.WeekForDay(day, s.opts.ReviewCycleDays)
		words := s.sess.ReviewSelection(scheduler.WeekKey(week), func(rng *rand.Rand) []models.WordEntry {
			return scheduler.WordsForReviewWeek(s.cat, week, s.opts.WordsPerDay, s.opts.ReviewCycleDays, rng)
		})
		batch.Words = words
		batch.ReviewCount = len(words)
		batch.ReviewDay = true
		return batch
	}

	today := scheduler.WordsForDay(s.cat, day, s.opts.WordsPerDay)
	batch.Words = today
	batch.NewCount = len(today)

	// An empty day stays empty: no review words are bolted onto a day
	// past the catalog's capacity.
	if day <= 1 || len(today) == 0 || s.opts.ReviewCount <= 0 {
		return batch
	}

	prev := scheduler.WordsForDay(s.cat, day-1, s.opts.WordsPerDay)
	review := s.sess.ReviewSelection(scheduler.DayKey(day), func(rng *rand.Rand) []models.WordEntry {
		return scheduler.ReviewSample(prev, s.opts.ReviewCount, rng)
	})
	batch.Words = append(append([]models.WordEntry{}, today...), review...)
	batch.ReviewCount = len(review)
	return batch
}

func (s *drillService) Submit(ctx context.Context, day int, answers map[int]string) (*SubmitResult, error) {
	log := logger.FromContext(ctx)

	if day < 1 {
		return nil, errors.NewValidationError("day", "must be at least 1")
	}

	batch := s.assemble(day)
	if len(batch.Words) == 0 {
		return nil, errors.NewValidationError("day", "no words scheduled for this day")
	}

	score, incorrect := quiz.Grade(batch.Words, answers)
	s.sess.MarkSubmitted(day)
	log.Debug("graded day %d: %d/%d", day, score, len(batch.Words))

	// Claim the Recorded slot before touching the store so a duplicate
	// submit cannot append the notes twice.
	if !s.sess.MarkRecorded(day) {
		return nil, errors.NewConflictError("results for this day are already recorded")
	}

	if err := s.notes.Append(ctx, day, incorrect); err != nil {
		s.sess.ResetToSubmitted(day)
		log.Error("failed to store incorrect notes: %v", err)
		return nil, errors.NewInternalError(err)
	}

	nextDay := day + 1
	if err := s.progress.SetLastDay(ctx, nextDay); err != nil {
		s.sess.ResetToSubmitted(day)
		log.Error("failed to advance day pointer: %v", err)
		return nil, errors.NewInternalError(err)
	}

	s.sess.RecordScore(models.ScoreEntry{Day: day, Score: score, Total: len(batch.Words)})
	if day >= s.sess.Day() {
		s.sess.SetDay(nextDay)
	}

	log.Info("day %d recorded: score %d/%d, %d mistakes", day, score, len(batch.Words), len(incorrect))
	return &SubmitResult{
		Day:       day,
		Score:     score,
		Total:     len(batch.Words),
		Incorrect: incorrect,
		NextDay:   nextDay,
	}, nil
}

func (s *drillService) ReviewWeek(ctx context.Context, week int) ([]models.WordEntry, error) {
	log := logger.FromContext(ctx)

	if week < 1 {
		return nil, errors.NewValidationError("week", "must be at least 1")
	}

	words := s.sess.ReviewSelection(scheduler.WeekKey(week), func(rng *rand.Rand) []models.WordEntry {
		return scheduler.WordsForReviewWeek(s.cat, week, s.opts.WordsPerDay, s.opts.ReviewCycleDays, rng)
	})
	log.Debug("review week %d: %d words", week, len(words))
	return words, nil
}

func (s *drillService) NotesForDay(ctx context.Context, day int) ([]models.IncorrectNote, error) {
	if day < 1 {
		return nil, errors.NewValidationError("day", "must be at least 1")
	}
	notes, err := s.notes.ForDay(ctx, day)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return notes, nil
}

func (s *drillService) DaysWithNotes(ctx context.Context) ([]int, error) {
	days, err := s.notes.Days(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return days, nil
}

func (s *drillService) History() []models.ScoreEntry {
	return s.sess.History()
}

func (s *drillService) SelectDay(day int) error {
	if day < 1 {
		return errors.NewValidationError("day", "must be at least 1")
	}
	s.sess.SetDay(day)
	return nil
}
