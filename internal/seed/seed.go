// Package seed creates development fixture data after migrations.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/eltecal/backend/internal/app/models"
	appRepos "github.com/eltecal/backend/internal/app/repositories"
	"github.com/eltecal/backend/internal/pkg/apperrors"
	"github.com/eltecal/backend/internal/pkg/auth"
)

const (
	demoEmail    = "demo@inf.elte.hu"
	demoPassword = "demo1234"
)

// CreateDefaultData creates a demo account with a sample semester so a fresh
// instance is immediately explorable. Existing data is left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	semesterRepo := appRepos.NewSemesterRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (demo account)...")

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	neptun := "DEMO01"
	user := &appModels.User{
		Email:      demoEmail,
		Password:   hashed,
		FirstName:  "Demo",
		LastName:   "Hallgató",
		NeptunCode: &neptun,
		IsActive:   true,
	}

	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Debug().Str("email", demoEmail).Msg("Demo account already exists, skipping seed")
			return nil
		}
		return err
	}

	now := time.Now()
	year := now.Year()
	// Academic year starting in the most recent September
	if now.Month() < time.September {
		year--
	}

	semester := &appModels.Semester{
		UserID:    user.ID,
		Name:      semesterName(year),
		StartDate: time.Date(year, time.September, 9, 0, 0, 0, 0, time.Local),
		EndDate:   time.Date(year, time.December, 14, 0, 0, 0, 0, time.Local),
	}

	if err := semesterRepo.Create(ctx, semester); err != nil &&
		!errors.Is(err, apperrors.ErrSemesterAlreadyExists) {
		return err
	}

	if err := semesterRepo.SetCurrent(ctx, user.ID, semester.ID); err != nil {
		lgr.Warn().Err(err).Msg("Could not mark demo semester current")
	}

	lgr.Info().Str("email", demoEmail).Msg("Demo account created")
	return nil
}

func semesterName(startYear int) string {
	return fmt.Sprintf("%d/%02d/1", startYear, (startYear+1)%100)
}
