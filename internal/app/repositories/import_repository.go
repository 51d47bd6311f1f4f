package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eltecal/backend/internal/app/models"
	"github.com/eltecal/backend/internal/pkg/apperrors"
)

// ImportRepository handles database operations for import records
type ImportRepository struct {
	db *pgxpool.Pool
}

// NewImportRepository creates a new import repository
func NewImportRepository(db *pgxpool.Pool) *ImportRepository {
	return &ImportRepository{
		db: db,
	}
}

// Create inserts an import record. Warnings are stored as a JSON array.
func (r *ImportRepository) Create(ctx context.Context, record *models.ImportRecord) error {
	warnings := record.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	warningsJSON, err := json.Marshal(warnings)
	if err != nil {
		return fmt.Errorf("error encoding import warnings: %w", err)
	}

	query := `
		INSERT INTO imports (user_id, semester_id, file_name, file_path, course_count, slot_count, warnings, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	now := time.Now()
	err = r.db.QueryRow(ctx, query,
		record.UserID, record.SemesterID, record.FileName, record.FilePath,
		record.CourseCount, record.SlotCount, warningsJSON, now,
	).Scan(&record.ID)

	if err != nil {
		return fmt.Errorf("error creating import record: %w", err)
	}

	record.CreatedAt = now
	return nil
}

// GetByID retrieves a single import record
func (r *ImportRepository) GetByID(ctx context.Context, id int64) (*models.ImportRecord, error) {
	query := `
		SELECT id, user_id, semester_id, file_name, file_path, course_count, slot_count, warnings, created_at
		FROM imports
		WHERE id = $1
	`

	record, err := scanImportRecord(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrImportNotFound
		}
		return nil, fmt.Errorf("error retrieving import record: %w", err)
	}

	return record, nil
}

// GetAllBySemester retrieves the import history of a semester, newest first
func (r *ImportRepository) GetAllBySemester(ctx context.Context, semesterID int64) ([]*models.ImportRecord, error) {
	query := `
		SELECT id, user_id, semester_id, file_name, file_path, course_count, slot_count, warnings, created_at
		FROM imports
		WHERE semester_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, semesterID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving import records: %w", err)
	}
	defer rows.Close()

	var records []*models.ImportRecord
	for rows.Next() {
		record, err := scanImportRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func scanImportRecord(row pgx.Row) (*models.ImportRecord, error) {
	var record models.ImportRecord
	var warningsJSON []byte

	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.SemesterID,
		&record.FileName,
		&record.FilePath,
		&record.CourseCount,
		&record.SlotCount,
		&warningsJSON,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(warningsJSON, &record.Warnings); err != nil {
		return nil, fmt.Errorf("error decoding import warnings: %w", err)
	}

	return &record, nil
}
