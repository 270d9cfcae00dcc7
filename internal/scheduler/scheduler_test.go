package scheduler_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junhyuk/worddrill/internal/catalog"
	"github.com/junhyuk/worddrill/internal/models"
	"github.com/junhyuk/worddrill/internal/scheduler"
)

func makeCatalog(n int) *catalog.Catalog {
	entries := make([]models.WordEntry, n)
	for i := range entries {
		entries[i] = models.WordEntry{
			Meaning: fmt.Sprintf("meaning-%d", i),
			Word:    fmt.Sprintf("word-%d", i),
		}
	}
	return catalog.New(entries)
}

func TestWordsForDay_DayRanges(t *testing.T) {
	cat := makeCatalog(45)

	tests := []struct {
		name      string
		day       int
		wantLen   int
		wantFirst string
	}{
		{
			name:      "first day",
			day:       1,
			wantLen:   20,
			wantFirst: "word-0",
		},
		{
			name:      "second day",
			day:       2,
			wantLen:   20,
			wantFirst: "word-20",
		},
		{
			name:      "truncated last day",
			day:       3,
			wantLen:   5,
			wantFirst: "word-40",
		},
		{
			name:    "day past capacity",
			day:     4,
			wantLen: 0,
		},
		{
			name:    "day zero",
			day:     0,
			wantLen: 0,
		},
		{
			name:    "negative day",
			day:     -3,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := scheduler.WordsForDay(cat, tt.day, 20)
			assert.Len(t, words, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, words[0].Word)
			}
		})
	}
}

func TestWordsForDay_CountFormula(t *testing.T) {
	cat := makeCatalog(45)
	n := 20

	for day := 1; day <= 6; day++ {
		want := 45 - (day-1)*n
		if want < 0 {
			want = 0
		}
		if want > n {
			want = n
		}
		assert.Len(t, scheduler.WordsForDay(cat, day, n), want, "day %d", day)
	}
}

func TestReviewSample_SizeAndUniqueness(t *testing.T) {
	cat := makeCatalog(45)
	prev := scheduler.WordsForDay(cat, 1, 20)
	rng := rand.New(rand.NewSource(1))

	sample := scheduler.ReviewSample(prev, 10, rng)
	require.Len(t, sample, 10)

	prevSet := make(map[string]bool, len(prev))
	for _, e := range prev {
		prevSet[e.Word] = true
	}
	seen := make(map[string]bool, len(sample))
	for _, e := range sample {
		assert.True(t, prevSet[e.Word], "sampled word %q must come from the previous day", e.Word)
		assert.False(t, seen[e.Word], "sampled word %q must not repeat", e.Word)
		seen[e.Word] = true
	}
}

func TestReviewSample_SmallPool(t *testing.T) {
	cat := makeCatalog(45)
	prev := scheduler.WordsForDay(cat, 3, 20) // only 5 entries
	rng := rand.New(rand.NewSource(1))

	sample := scheduler.ReviewSample(prev, 10, rng)
	assert.Len(t, sample, 5, "sample is capped at the pool size")
}

func TestReviewSample_Empty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Empty(t, scheduler.ReviewSample(nil, 10, rng))
	assert.Empty(t, scheduler.ReviewSample([]models.WordEntry{{Word: "a"}}, 0, rng))
}

func TestWordsForReviewWeek(t *testing.T) {
	cat := makeCatalog(120)
	rng := rand.New(rand.NewSource(1))

	words := scheduler.WordsForReviewWeek(cat, 1, 20, 5, rng)
	require.Len(t, words, 100, "week 1 covers the first five day blocks")

	seen := make(map[string]bool, len(words))
	for _, e := range words {
		seen[e.Word] = true
	}
	for i := 0; i < 100; i++ {
		assert.True(t, seen[fmt.Sprintf("word-%d", i)], "row %d must be in week 1", i)
	}

	words2 := scheduler.WordsForReviewWeek(cat, 2, 20, 5, rng)
	assert.Len(t, words2, 20, "week 2 is clipped to the remaining rows")
	assert.Empty(t, scheduler.WordsForReviewWeek(cat, 3, 20, 5, rng))
}

func TestIsReviewDay(t *testing.T) {
	assert.False(t, scheduler.IsReviewDay(1, 5))
	assert.False(t, scheduler.IsReviewDay(4, 5))
	assert.True(t, scheduler.IsReviewDay(5, 5))
	assert.True(t, scheduler.IsReviewDay(10, 5))
	assert.False(t, scheduler.IsReviewDay(5, 0))
}

func TestWeekForDay(t *testing.T) {
	assert.Equal(t, 1, scheduler.WeekForDay(5, 5))
	assert.Equal(t, 2, scheduler.WeekForDay(10, 5))
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, scheduler.PerDayReview, scheduler.ParsePolicy("per_day"))
	assert.Equal(t, scheduler.WeeklyReviewBlock, scheduler.ParsePolicy("weekly_block"))
	assert.Equal(t, scheduler.SpecialReviewToggle, scheduler.ParsePolicy("special_toggle"))
	assert.Equal(t, scheduler.PerDayReview, scheduler.ParsePolicy("bogus"))
}
