package session_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junhyuk/worddrill/internal/models"
	"github.com/junhyuk/worddrill/internal/scheduler"
	"github.com/junhyuk/worddrill/internal/session"
)

func TestDayPointer(t *testing.T) {
	s := session.New(3)
	assert.Equal(t, 3, s.Day())

	s.Advance()
	assert.Equal(t, 4, s.Day())

	s.SetDay(1)
	assert.Equal(t, 1, s.Day())

	s.SetDay(-2)
	assert.Equal(t, 1, s.Day(), "day pointer clamps at 1")
}

func TestNew_ClampsStartDay(t *testing.T) {
	assert.Equal(t, 1, session.New(0).Day())
}

func TestReviewSelection_MemoizedPerKey(t *testing.T) {
	s := session.New(1)
	calls := 0
	compute := func(rng *rand.Rand) []models.WordEntry {
		calls++
		words := []models.WordEntry{{Word: "a"}, {Word: "b"}, {Word: "c"}}
		rng.Shuffle(len(words), func(i, j int) {
			words[i], words[j] = words[j], words[i]
		})
		return words
	}

	first := s.ReviewSelection(scheduler.DayKey(2), compute)
	second := s.ReviewSelection(scheduler.DayKey(2), compute)

	assert.Equal(t, 1, calls, "selection is computed at most once per key")
	assert.Equal(t, first, second, "same elements in the same order on every access")
}

func TestReviewSelection_DistinctKeys(t *testing.T) {
	s := session.New(1)
	calls := 0
	compute := func(rng *rand.Rand) []models.WordEntry {
		calls++
		return []models.WordEntry{{Word: "x"}}
	}

	s.ReviewSelection(scheduler.DayKey(2), compute)
	s.ReviewSelection(scheduler.DayKey(3), compute)
	s.ReviewSelection(scheduler.WeekKey(2), compute)

	assert.Equal(t, 3, calls, "day and week keys never collide")
}

func TestScoreHistory(t *testing.T) {
	s := session.New(1)
	assert.Empty(t, s.History())

	s.RecordScore(models.ScoreEntry{Day: 1, Score: 15, Total: 20})
	s.RecordScore(models.ScoreEntry{Day: 2, Score: 25, Total: 30})

	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, models.ScoreEntry{Day: 1, Score: 15, Total: 20}, history[0])
	assert.Equal(t, models.ScoreEntry{Day: 2, Score: 25, Total: 30}, history[1])

	// The returned slice is a copy.
	history[0].Score = 0
	assert.Equal(t, 15, s.History()[0].Score)
}

func TestDayStateMachine(t *testing.T) {
	s := session.New(1)
	assert.Equal(t, session.NotStarted, s.State(1))

	s.MarkInProgress(1)
	assert.Equal(t, session.InProgress, s.State(1))

	s.MarkSubmitted(1)
	assert.Equal(t, session.Submitted, s.State(1))

	require.True(t, s.MarkRecorded(1))
	assert.Equal(t, session.Recorded, s.State(1))

	// Recorded is terminal.
	s.MarkInProgress(1)
	s.MarkSubmitted(1)
	assert.Equal(t, session.Recorded, s.State(1))
}

func TestMarkRecorded_DoubleSubmitGuard(t *testing.T) {
	s := session.New(1)

	assert.True(t, s.MarkRecorded(1), "first submit wins")
	assert.False(t, s.MarkRecorded(1), "second submit is refused")
}

func TestResetToSubmitted(t *testing.T) {
	s := session.New(1)
	require.True(t, s.MarkRecorded(1))

	s.ResetToSubmitted(1)
	assert.Equal(t, session.Submitted, s.State(1))
	assert.True(t, s.MarkRecorded(1), "the day can be recorded again after a failed persist")

	// No-op on days that are not recorded.
	s.ResetToSubmitted(7)
	assert.Equal(t, session.NotStarted, s.State(7))
}

func TestDayStateString(t *testing.T) {
	assert.Equal(t, "not_started", session.NotStarted.String())
	assert.Equal(t, "in_progress", session.InProgress.String())
	assert.Equal(t, "submitted", session.Submitted.String())
	assert.Equal(t, "recorded", session.Recorded.String())
}
