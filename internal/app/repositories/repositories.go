package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container for all repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	SemesterRepository     *SemesterRepository
	CourseRepository       *CourseRepository
	ImportRepository       *ImportRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		SemesterRepository:     NewSemesterRepository(db),
		CourseRepository:       NewCourseRepository(db),
		ImportRepository:       NewImportRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
