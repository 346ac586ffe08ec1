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

	appControllers "github.com/videobelajar/backend/internal/app/controllers"
	appMigrations "github.com/videobelajar/backend/internal/app/migrations"
	appRepos "github.com/videobelajar/backend/internal/app/repositories"
	appRoutes "github.com/videobelajar/backend/internal/app/routes"
	appServices "github.com/videobelajar/backend/internal/app/services"
	"github.com/videobelajar/backend/internal/config"
	"github.com/videobelajar/backend/internal/db"
	appMiddleware "github.com/videobelajar/backend/internal/middleware"
	pkgAuth "github.com/videobelajar/backend/internal/pkg/auth"
	"github.com/videobelajar/backend/internal/pkg/email"
	"github.com/videobelajar/backend/internal/pkg/filestorage"
	"github.com/videobelajar/backend/internal/pkg/helpers"
	"github.com/videobelajar/backend/internal/pkg/logger"
	"github.com/videobelajar/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos            *appRepos.Repositories
	JWTService       *pkgAuth.JWTService
	PasswordHasher   *pkgAuth.PasswordHasher
	Bootstrap        *pkgAuth.BootstrapProvider
	Mailer           email.Sender
	FileStorage      *filestorage.LocalStorage
	AuthService      appServices.IAuthService
	UserService      appServices.IUserService
	CourseService    appServices.ICourseService
	AuthController   *appControllers.AuthController
	UserController   *appControllers.UserController
	CourseController *appControllers.CourseController
	UploadController *appControllers.UploadController
	AuthMiddleware   *appMiddleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	logger.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// first-run seeding.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	logger.Info().Msg("Database connection successfully established.")

	logger.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		logger.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		logger.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations successfully applied.")

	// An empty catalog gets the built-in defaults; failure here should not
	// keep the server from starting.
	if err := seed.EnsureDefaultCourses(context.Background(), dbPool); err != nil {
		logger.Error().Err(err).Msg("Failed to seed default courses, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, "")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 168*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.PasswordHasher = pkgAuth.NewPasswordHasher(cfg.Auth.BcryptCost)
	deps.Bootstrap = pkgAuth.NewBootstrapProvider(cfg.Auth.BootstrapAccounts)
	if deps.Bootstrap.Enabled() {
		logger.Warn().Int("accounts", len(cfg.Auth.BootstrapAccounts)).Msg("Bootstrap accounts enabled; disable them in production")
	}

	deps.Mailer = email.NewSMTPSender(email.Config{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		FromName:   cfg.SMTP.FromName,
		FromEmail:  cfg.SMTP.FromEmail,
		MaxRetries: cfg.SMTP.MaxRetries,
		RetryDelay: helpers.ParseDuration(cfg.SMTP.RetryDelay, time.Second),
	}, cfg.App.BaseURL)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.JWTService,
		deps.PasswordHasher,
		deps.Bootstrap,
		deps.Mailer,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.PasswordHasher)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.UploadController = appControllers.NewUploadController(deps.FileStorage)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		logger.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CourseController,
		deps.UploadController,
		deps.AuthMiddleware,
	)

	return router
}
