package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/junhyuk/worddrill/internal/logger"
	"github.com/junhyuk/worddrill/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) LastDay(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	var day int
	err := r.db.QueryRowContext(ctx, `SELECT last_day FROM progress WHERE id = 1`).Scan(&day)
	if err != nil {
		log.Error("failed to read last day: %v", err)
		return 0, err
	}
	log.Debug("last day read: %d", day)
	return day, nil
}

func (r *progressRepository) SetLastDay(ctx context.Context, day int) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("setting last day: %d", day)

	res, err := r.db.ExecContext(ctx, `
UPDATE progress
SET last_day = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = 1
`, day)
	if err != nil {
		log.Error("failed to set last day: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// The migration seeds the row, so this means the schema is broken.
		return fmt.Errorf("progress row missing")
	}
	return nil
}
