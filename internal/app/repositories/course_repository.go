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
)

// CourseRepository handles database operations for courses and their slots
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseColumns = `id, semester_id, code, name, class_code, course_type, weekly_hours, instructors, created_at, updated_at`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(
		&c.ID,
		&c.SemesterID,
		&c.Code,
		&c.Name,
		&c.ClassCode,
		&c.Type,
		&c.WeeklyHours,
		&c.Instructors,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a course together with its schedule slots in one transaction
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return insertCourseTx(ctx, tx, course)
	})
}

func insertCourseTx(ctx context.Context, tx pgx.Tx, course *models.Course) error {
	query := `
		INSERT INTO courses (semester_id, code, name, class_code, course_type, weekly_hours, instructors, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id
	`

	now := time.Now()
	err := tx.QueryRow(ctx, query,
		course.SemesterID, course.Code, course.Name, course.ClassCode,
		course.Type, course.WeeklyHours, course.Instructors, now,
	).Scan(&course.ID)

	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	course.CreatedAt = now
	course.UpdatedAt = now

	return insertSlotsTx(ctx, tx, course.ID, course.Slots)
}

func insertSlotsTx(ctx context.Context, tx pgx.Tx, courseID int64, slots []*models.ScheduleSlot) error {
	for _, slot := range slots {
		err := tx.QueryRow(ctx, `
			INSERT INTO schedule_slots (course_id, weekday, start_time, end_time, location)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, courseID, slot.Weekday, slot.StartTime, slot.EndTime, slot.Location).Scan(&slot.ID)

		if err != nil {
			return fmt.Errorf("error creating schedule slot: %w", err)
		}
		slot.CourseID = courseID
	}
	return nil
}

// GetByID retrieves a course with its slots
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	if err := r.attachSlots(ctx, []*models.Course{course}); err != nil {
		return nil, err
	}

	return course, nil
}

// GetAllBySemester retrieves all courses of a semester with their slots
func (r *CourseRepository) GetAllBySemester(ctx context.Context, semesterID int64) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE semester_id = $1 ORDER BY code, class_code`

	rows, err := r.db.Query(ctx, query, semesterID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSlots(ctx, courses); err != nil {
		return nil, err
	}

	return courses, nil
}

// attachSlots loads schedule slots for the given courses in a single query
func (r *CourseRepository) attachSlots(ctx context.Context, courses []*models.Course) error {
	if len(courses) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(courses))
	byID := make(map[int64]*models.Course, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
		byID[c.ID] = c
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, course_id, weekday, start_time, end_time, location
		FROM schedule_slots
		WHERE course_id = ANY($1)
		ORDER BY weekday, start_time
	`, ids)
	if err != nil {
		return fmt.Errorf("error retrieving schedule slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var slot models.ScheduleSlot
		if err := rows.Scan(&slot.ID, &slot.CourseID, &slot.Weekday, &slot.StartTime, &slot.EndTime, &slot.Location); err != nil {
			return err
		}
		if course, ok := byID[slot.CourseID]; ok {
			course.Slots = append(course.Slots, &slot)
		}
	}

	return rows.Err()
}

// Update replaces a course's fields and its entire slot set
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			UPDATE courses
			SET code = $1, name = $2, class_code = $3, course_type = $4, weekly_hours = $5, instructors = $6, updated_at = $7
			WHERE id = $8
		`

		cmdTag, err := tx.Exec(ctx, query,
			course.Code, course.Name, course.ClassCode, course.Type,
			course.WeeklyHours, course.Instructors, time.Now(), course.ID)
		if err != nil {
			return fmt.Errorf("error updating course: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCourseNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM schedule_slots WHERE course_id = $1`, course.ID); err != nil {
			return fmt.Errorf("error clearing schedule slots: %w", err)
		}

		return insertSlotsTx(ctx, tx, course.ID, course.Slots)
	})
}

// Delete deletes a course; schedule slots cascade
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// ReplaceSemesterCourses atomically swaps a semester's full course set for
// the given one. Used by spreadsheet import, where the latest file wins.
func (r *CourseRepository) ReplaceSemesterCourses(ctx context.Context, semesterID int64, courses []*models.Course) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM courses WHERE semester_id = $1`, semesterID); err != nil {
			return fmt.Errorf("error clearing semester courses: %w", err)
		}

		for _, course := range courses {
			course.SemesterID = semesterID
			if err := insertCourseTx(ctx, tx, course); err != nil {
				return err
			}
		}

		return nil
	})
}
