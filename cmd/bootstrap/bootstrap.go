package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"therapist-directory/config"
	deliveryHttp "therapist-directory/internal/delivery/http"
	"therapist-directory/internal/delivery/http/handler"
	"therapist-directory/internal/delivery/http/middleware"
	domainRepo "therapist-directory/internal/domain/repository"
	"therapist-directory/internal/infrastructure/cache"
	"therapist-directory/internal/infrastructure/database"
	"therapist-directory/internal/repository"
	"therapist-directory/internal/service"
	"therapist-directory/internal/usecase"
	"therapist-directory/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	loadTimeout     = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Directory   usecase.DirectoryUsecase
	Preferences usecase.PreferenceUsecase
	Server      *http.Server
}

// Options tweak how the directory is built, mostly for the CLI.
type Options struct {
	Fs            afero.Fs
	DisableRating bool
	LogOutput     io.Writer
}

// NewDirectory loads configuration, sets up logging and loads the dataset
// once. A failed dataset load is recorded on the use case, not returned:
// it is rendered as the session's error state.
func NewDirectory(cfg *config.Config, opts Options) (*App, error) {
	app := &App{Config: cfg}

	// Setup logger
	app.Log = setupLogger(cfg.App.LogLevel)
	if opts.LogOutput != nil {
		app.Log.SetOutput(opts.LogOutput)
	}

	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	source, err := app.initializeSource(opts.Fs)
	if err != nil {
		app.Close()
		return nil, err
	}

	var rating service.RatingService
	if cfg.App.RatingEnabled && !opts.DisableRating {
		rating = service.NewRandomRatingService(nil)
	}

	app.Directory = usecase.NewDirectoryUsecase(app.Log, source, rating)

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	if err := app.Directory.Load(ctx); err != nil {
		app.Log.Errorf("Directory unavailable: %v", err)
	}

	return app, nil
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	app, err := NewDirectory(cfg, Options{})
	if err != nil {
		return nil, err
	}

	// Initialize preference storage
	var preferenceRepo domainRepo.PreferenceRepository
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		preferenceRepo = repository.NewRedisPreferenceRepository(redisClient, cfg.Preference.TTL)
		app.Log.Info("Redis connected successfully")
	} else {
		preferenceRepo = repository.NewMemoryPreferenceRepository()
		app.Log.Info("Redis not configured, theme preferences are kept in memory")
	}
	app.Preferences = usecase.NewPreferenceUsecase(app.Log, preferenceRepo)

	app.Server = app.initializeServer()

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	return logrus.StandardLogger()
}

// initializeSource picks where the dataset is read from. With the postgres
// source the CSV can optionally be imported into the table first.
func (app *App) initializeSource(fs afero.Fs) (domainRepo.TherapistRepository, error) {
	cfg := app.Config
	csvSource := repository.NewTherapistCSVRepository(fs, cfg.Dataset.Path, app.Log)

	if cfg.Dataset.Source != config.DatasetSourcePostgres {
		return csvSource, nil
	}

	logLevel := logger.Warn
	if cfg.App.Env == "development" {
		logLevel = logger.Info
	}

	db, err := database.NewPostgresConnection(cfg.DB, logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	store := repository.NewTherapistRepository(db)
	if cfg.Dataset.Import {
		if err := importDataset(csvSource, store, app.Log); err != nil {
			return nil, err
		}
	}

	return store, nil
}

func importDataset(from domainRepo.TherapistRepository, to domainRepo.TherapistStore, log *logrus.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	therapists, err := from.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read dataset for import: %w", err)
	}
	if err := to.ReplaceAll(ctx, therapists); err != nil {
		return fmt.Errorf("failed to import dataset: %w", err)
	}

	log.Infof("Imported %d therapists from %s into %s", len(therapists), from.Describe(), to.Describe())
	return nil
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize handlers
	therapistHandler := handler.NewTherapistHandler(app.Directory, customValidator)
	preferenceHandler := handler.NewPreferenceHandler(app.Preferences, customValidator)
	pageHandler := handler.NewPageHandler(app.Directory, app.Preferences, customValidator, app.Log)

	// Initialize middleware
	clientMiddleware := middleware.NewClientMiddleware(app.Config.Preference.TTL)
	corsMiddleware := middleware.NewCORSMiddleware(app.Config.App.CORSOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(therapistHandler, preferenceHandler, pageHandler, clientMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", app.Config.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
