// Package bootstrap wires configuration, storage, repositories, services and
// controllers together for the HTTP server.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/eltecal/backend/internal/app/controllers"
	appMigrations "github.com/eltecal/backend/internal/app/migrations"
	appRepos "github.com/eltecal/backend/internal/app/repositories"
	appRoutes "github.com/eltecal/backend/internal/app/routes"
	appServices "github.com/eltecal/backend/internal/app/services"
	"github.com/eltecal/backend/internal/config"
	"github.com/eltecal/backend/internal/db"
	appMiddleware "github.com/eltecal/backend/internal/middleware"
	pkgAuth "github.com/eltecal/backend/internal/pkg/auth"
	"github.com/eltecal/backend/internal/pkg/filestorage"
	"github.com/eltecal/backend/internal/pkg/helpers"
	"github.com/eltecal/backend/internal/pkg/logger"
	"github.com/eltecal/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            *appServices.AuthService
	SemesterService        *appServices.SemesterService
	CourseService          *appServices.CourseService
	ImportService          *appServices.ImportService
	CalendarService        *appServices.CalendarService
	ExportService          *appServices.ExportService
	NotificationService    *appServices.NotificationService
	AuthController         *appControllers.AuthController
	SemesterController     *appControllers.SemesterController
	CourseController       *appControllers.CourseController
	ImportController       *appControllers.ImportController
	CalendarController     *appControllers.CalendarController
	ExportController       *appControllers.ExportController
	NotificationController *appControllers.NotificationController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	FileStorage            *filestorage.LocalStorage
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding is convenience data only, keep starting up
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	// Services
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.SemesterService = appServices.NewSemesterService(deps.Repos.SemesterRepository, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.SemesterService, lgr)
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository, lgr)
	deps.ImportService = appServices.NewImportService(
		deps.Repos.CourseRepository,
		deps.Repos.ImportRepository,
		deps.SemesterService,
		deps.NotificationService,
		deps.FileStorage,
		lgr,
	)
	deps.CalendarService = appServices.NewCalendarService(deps.Repos.CourseRepository, deps.SemesterService, lgr)
	deps.ExportService = appServices.NewExportService(deps.Repos.CourseRepository, deps.SemesterService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	// Controllers
	maxUploadSize := int64(cfg.Import.MaxUploadSizeMB) << 20
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.SemesterController = appControllers.NewSemesterController(deps.SemesterService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, lgr)
	deps.ImportController = appControllers.NewImportController(deps.ImportService, maxUploadSize, lgr)
	deps.CalendarController = appControllers.NewCalendarController(deps.CalendarService, lgr)
	deps.ExportController = appControllers.NewExportController(deps.ExportService, lgr)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.SemesterController,
		deps.CourseController,
		deps.ImportController,
		deps.CalendarController,
		deps.ExportController,
		deps.NotificationController,
		deps.AuthMiddleware,
	)

	return router
}
