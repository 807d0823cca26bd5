package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mtoscano/cinelist"
)

// Compile-time interface verification.
var _ cinelist.RunService = (*RunService)(nil)

// RunService implements cinelist.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a run together with its dataset rows atomically.
func (s *RunService) CreateRun(ctx context.Context, run *cinelist.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, url, items_found, skipped, row_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.URL, run.ItemsFound, run.Skipped, run.RowCount,
		run.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for _, row := range run.Rows {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO rows (id, run_id, no, title, year, duration, age, rating, votes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), run.ID, row.No, row.Title,
			intArg(row.Year), intArg(row.Duration), row.Age,
			floatArg(row.Rating), intArg(row.Votes))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run with its rows in dataset order.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*cinelist.Run, error) {
	var run cinelist.Run
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, items_found, skipped, row_count, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.URL, &run.ItemsFound, &run.Skipped, &run.RowCount, &createdAt)

	if err == sql.ErrNoRows {
		return nil, cinelist.Errorf(cinelist.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT no, title, year, duration, age, rating, votes
		FROM rows
		WHERE run_id = ?
		ORDER BY no ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row cinelist.Row
		var year, duration, votes sql.NullInt64
		var rating sql.NullFloat64

		if err := rows.Scan(&row.No, &row.Title, &year, &duration, &row.Age, &rating, &votes); err != nil {
			return nil, err
		}
		row.Year = nullInt(year)
		row.Duration = nullInt(duration)
		row.Rating = nullFloat(rating)
		row.Votes = nullInt(votes)

		run.Rows = append(run.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &run, nil
}

// FindRuns retrieves runs matching the filter, newest first, without rows.
func (s *RunService) FindRuns(ctx context.Context, filter cinelist.RunFilter) ([]*cinelist.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, items_found, skipped, row_count, created_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*cinelist.Run
	for rows.Next() {
		var run cinelist.Run
		var createdAt string

		if err := rows.Scan(&run.ID, &run.URL, &run.ItemsFound, &run.Skipped, &run.RowCount, &createdAt); err != nil {
			return nil, err
		}
		run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

// DeleteRun permanently removes a run; its rows cascade.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return cinelist.Errorf(cinelist.ENOTFOUND, "run not found")
	}

	return nil
}
