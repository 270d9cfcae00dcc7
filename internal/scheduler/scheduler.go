package scheduler

import (
	"math/rand"

	"github.com/junhyuk/worddrill/internal/catalog"
	"github.com/junhyuk/worddrill/internal/models"
)

// Policy selects how spaced review is mixed into a day's batch.
type Policy string

const (
	// PerDayReview appends a fixed random sample from the previous
	// day's words to every day after the first.
	PerDayReview Policy = "per_day"
	// WeeklyReviewBlock turns every cycle-th day into a review day
	// that replays a shuffle of the whole preceding block instead of
	// introducing new words.
	WeeklyReviewBlock Policy = "weekly_block"
	// SpecialReviewToggle behaves like PerDayReview for normal days
	// but lets the caller request a shuffled week block explicitly.
	SpecialReviewToggle Policy = "special_toggle"
)

// ParsePolicy maps a config string to a Policy, defaulting to
// PerDayReview for unknown values.
func ParsePolicy(s string) Policy {
	switch Policy(s) {
	case PerDayReview, WeeklyReviewBlock, SpecialReviewToggle:
		return Policy(s)
	default:
		return PerDayReview
	}
}

// ReviewKind distinguishes the two kinds of memoized review selections.
type ReviewKind int

const (
	KindDay ReviewKind = iota
	KindWeek
)

// ReviewKey identifies one memoized review selection. It is comparable
// so it can key a map directly instead of a formatted string.
type ReviewKey struct {
	Kind  ReviewKind
	Index int
}

// DayKey returns the key for day's per-day review sample.
func DayKey(day int) ReviewKey { return ReviewKey{Kind: KindDay, Index: day} }

// WeekKey returns the key for week's shuffled block.
func WeekKey(week int) ReviewKey { return ReviewKey{Kind: KindWeek, Index: week} }

// WordsForDay returns the catalog rows [(day-1)*n, day*n), clipped to
// the catalog bounds. Days past the catalog capacity, and days below 1,
// yield an empty batch.
func WordsForDay(cat *catalog.Catalog, day, n int) []models.WordEntry {
	if day < 1 || n <= 0 {
		return nil
	}
	return cat.Slice((day-1)*n, day*n)
}

// ReviewSample draws a without-replacement sample of min(count,
// len(prev)) entries. The draw is random per call; callers that need a
// stable selection memoize the result (see session.Session).
func ReviewSample(prev []models.WordEntry, count int, rng *rand.Rand) []models.WordEntry {
	if count <= 0 || len(prev) == 0 {
		return nil
	}
	idx := rng.Perm(len(prev))
	if count > len(prev) {
		count = len(prev)
	}
	sample := make([]models.WordEntry, 0, count)
	for _, i := range idx[:count] {
		sample = append(sample, prev[i])
	}
	return sample
}

// WordsForReviewWeek returns a shuffled copy of the rows covering the
// cycle preceding day blocks: [(week-1)*cycle*n, week*cycle*n), clipped.
func WordsForReviewWeek(cat *catalog.Catalog, week, n, cycle int, rng *rand.Rand) []models.WordEntry {
	if week < 1 || n <= 0 || cycle <= 0 {
		return nil
	}
	block := cat.Slice((week-1)*cycle*n, week*cycle*n)
	rng.Shuffle(len(block), func(i, j int) {
		block[i], block[j] = block[j], block[i]
	})
	return block
}

// IsReviewDay reports whether day is a dedicated review day under the
// WeeklyReviewBlock policy, i.e. every cycle-th day.
func IsReviewDay(day, cycle int) bool {
	return cycle > 0 && day > 0 && day%cycle == 0
}

// WeekForDay returns the review week a WeeklyReviewBlock review day
// covers: day cycle closes week day/cycle.
func WeekForDay(day, cycle int) int {
	if cycle <= 0 {
		return 0
	}
	return day / cycle
}
