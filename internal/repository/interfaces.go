package repository

import (
	"context"

	"github.com/junhyuk/worddrill/internal/models"
)

// ProgressRepository handles the durable day pointer. The table holds
// exactly one row, seeded to day 1 by the schema migration.
type ProgressRepository interface {
	LastDay(ctx context.Context) (int, error)
	SetLastDay(ctx context.Context, day int) error
}

// NoteRepository handles the append-only incorrect-answer log.
type NoteRepository interface {
	Append(ctx context.Context, day int, notes []models.IncorrectAnswer) error
	ForDay(ctx context.Context, day int) ([]models.IncorrectNote, error)
	Days(ctx context.Context) ([]int, error)
}
