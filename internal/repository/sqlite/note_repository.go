package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/junhyuk/worddrill/internal/logger"
	"github.com/junhyuk/worddrill/internal/models"
	"github.com/junhyuk/worddrill/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type noteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new NoteRepository implementation
func NewNoteRepository(db *sql.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Append(ctx context.Context, day int, notes []models.IncorrectAnswer) error {
	log := logger.FromContext(ctx).WithPrefix("note_repo")
	if len(notes) == 0 {
		log.Debug("no incorrect notes to append for day %d", day)
		return nil
	}
	log.Debug("appending %d incorrect notes for day %d", len(notes), day)

	// One transaction per submit so a mid-batch failure leaves no
	// partial note set behind.
	return tx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO incorrect_notes (day, meaning, user_answer, correct_answer)
VALUES (?, ?, ?, ?)
`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, n := range notes {
			if _, err := stmt.ExecContext(ctx, day, n.Meaning, n.UserAnswer, n.CorrectAnswer); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *noteRepository) ForDay(ctx context.Context, day int) ([]models.IncorrectNote, error) {
	log := logger.FromContext(ctx).WithPrefix("note_repo")
	log.Debug("loading incorrect notes for day %d", day)

	query, args, err := sqlBuilder.
		Select("id", "day", "meaning", "user_answer", "correct_answer", "created_at").
		From("incorrect_notes").
		Where(squirrel.Eq{"day": day}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query incorrect notes: %v", err)
		return nil, err
	}
	defer rows.Close()

	var notes []models.IncorrectNote
	for rows.Next() {
		var n models.IncorrectNote
		if err := rows.Scan(&n.ID, &n.Day, &n.Meaning, &n.UserAnswer, &n.CorrectAnswer, &n.CreatedAt); err != nil {
			log.Error("failed to scan note row: %v", err)
			return nil, err
		}
		notes = append(notes, n)
	}
	log.Debug("found %d notes for day %d", len(notes), day)
	return notes, rows.Err()
}

func (r *noteRepository) Days(ctx context.Context) ([]int, error) {
	log := logger.FromContext(ctx).WithPrefix("note_repo")

	query, args, err := sqlBuilder.
		Select("DISTINCT day").
		From("incorrect_notes").
		OrderBy("day ASC").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query note days: %v", err)
		return nil, err
	}
	defer rows.Close()

	var days []int
	for rows.Next() {
		var d int
		if err := rows.Scan(&d); err != nil {
			log.Error("failed to scan day row: %v", err)
			return nil, err
		}
		days = append(days, d)
	}
	log.Debug("found notes on %d distinct days", len(days))
	return days, rows.Err()
}
