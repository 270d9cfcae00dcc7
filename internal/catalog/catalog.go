package catalog

import (
	"github.com/junhyuk/worddrill/internal/models"
)

// Catalog is the full ordered word list backing all day computations.
// It is loaded once at startup and never mutated; row order defines
// the day boundaries.
type Catalog struct {
	entries []models.WordEntry
}

// New wraps a list of entries. The slice is copied so later changes to
// the caller's slice cannot reach the catalog.
func New(entries []models.WordEntry) *Catalog {
	copied := make([]models.WordEntry, len(entries))
	copy(copied, entries)
	return &Catalog{entries: copied}
}

// Len returns the number of catalog rows.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Slice returns the rows in the half-open range [lo, hi), clipped to
// the catalog bounds. An empty or inverted range yields an empty slice.
func (c *Catalog) Slice(lo, hi int) []models.WordEntry {
	if lo < 0 {
		lo = 0
	}
	if hi > len(c.entries) {
		hi = len(c.entries)
	}
	if lo >= hi {
		return nil
	}
	out := make([]models.WordEntry, hi-lo)
	copy(out, c.entries[lo:hi])
	return out
}

// Days returns how many day batches the catalog holds at the given
// batch size (the last batch may be short).
func (c *Catalog) Days(wordsPerDay int) int {
	if wordsPerDay <= 0 {
		return 0
	}
	return (len(c.entries) + wordsPerDay - 1) / wordsPerDay
}
