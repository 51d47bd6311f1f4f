package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eltecal/backend/internal/app/models"
	"github.com/eltecal/backend/internal/db"
	"github.com/eltecal/backend/internal/pkg/apperrors"
	"github.com/eltecal/backend/internal/pkg/dberrors"
)

// SemesterRepository handles database operations for semesters
type SemesterRepository struct {
	db *pgxpool.Pool
}

// NewSemesterRepository creates a new semester repository
func NewSemesterRepository(db *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{
		db: db,
	}
}

const semesterColumns = `id, user_id, name, start_date, end_date, is_current, created_at, updated_at`

func scanSemester(row pgx.Row) (*models.Semester, error) {
	var s models.Semester
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Name,
		&s.StartDate,
		&s.EndDate,
		&s.IsCurrent,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new semester and fills in the generated ID
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) error {
	query := `
		INSERT INTO semesters (user_id, name, start_date, end_date, is_current, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		semester.UserID, semester.Name, semester.StartDate, semester.EndDate, semester.IsCurrent, now,
	).Scan(&semester.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "semesters_user_id_name_key") {
			return apperrors.ErrSemesterAlreadyExists
		}
		return fmt.Errorf("error creating semester: %w", err)
	}

	semester.CreatedAt = now
	semester.UpdatedAt = now
	return nil
}

// GetByID retrieves a semester by ID
func (r *SemesterRepository) GetByID(ctx context.Context, id int64) (*models.Semester, error) {
	query := `SELECT ` + semesterColumns + ` FROM semesters WHERE id = $1`

	semester, err := scanSemester(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, fmt.Errorf("error retrieving semester: %w", err)
	}

	return semester, nil
}

// GetAllByUser retrieves all semesters owned by a user, newest first
func (r *SemesterRepository) GetAllByUser(ctx context.Context, userID int64) ([]*models.Semester, error) {
	query := `SELECT ` + semesterColumns + ` FROM semesters WHERE user_id = $1 ORDER BY start_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving semesters: %w", err)
	}
	defer rows.Close()

	var semesters []*models.Semester
	for rows.Next() {
		semester, err := scanSemester(rows)
		if err != nil {
			return nil, err
		}
		semesters = append(semesters, semester)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return semesters, nil
}

// Update updates an existing semester
func (r *SemesterRepository) Update(ctx context.Context, semester *models.Semester) error {
	query := `
		UPDATE semesters
		SET name = $1, start_date = $2, end_date = $3, updated_at = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		semester.Name, semester.StartDate, semester.EndDate, time.Now(), semester.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "semesters_user_id_name_key") {
			return apperrors.ErrSemesterAlreadyExists
		}
		return fmt.Errorf("error updating semester: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSemesterNotFound
	}

	return nil
}

// Delete deletes a semester; courses, slots and import records cascade
func (r *SemesterRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM semesters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting semester: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSemesterNotFound
	}

	return nil
}

// SetCurrent marks one semester current and clears the flag on the user's
// other semesters, in a single transaction.
func (r *SemesterRepository) SetCurrent(ctx context.Context, userID, semesterID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE semesters SET is_current = FALSE WHERE user_id = $1 AND is_current`, userID); err != nil {
			return fmt.Errorf("error clearing current semester: %w", err)
		}

		cmdTag, err := tx.Exec(ctx,
			`UPDATE semesters SET is_current = TRUE WHERE id = $1 AND user_id = $2`, semesterID, userID)
		if err != nil {
			return fmt.Errorf("error setting current semester: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrSemesterNotFound
		}

		return nil
	})
}
