package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/dstrickland/wordsmith-api/internal/config"
	"github.com/dstrickland/wordsmith-api/internal/domain/srs"
	"github.com/dstrickland/wordsmith-api/internal/generation"
	"github.com/dstrickland/wordsmith-api/internal/platform/gemini"
	"github.com/dstrickland/wordsmith-api/internal/platform/postgres"
	"github.com/dstrickland/wordsmith-api/internal/service/auth"
	"github.com/dstrickland/wordsmith-api/internal/service/batch"
	"github.com/dstrickland/wordsmith-api/internal/service/review"
	"github.com/dstrickland/wordsmith-api/internal/service/word"
	"github.com/dstrickland/wordsmith-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// application holds the shared dependencies so wiring and cleanup live in
// one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore   store.UserStore
	wordStore   store.WordStore
	reviewStore store.ReviewStore
	bundleStore store.BundleStore

	// Services
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	srsService       srs.Service
	questionProvider generation.QuestionProvider
	wordService      word.Service
	reviewService    review.Service
	batchService     batch.Service
}

// newApplication wires all application dependencies from the loaded
// configuration and open database connection.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewUserStore(db, bcrypt.DefaultCost)
	app.wordStore = postgres.NewWordStore(db)
	app.reviewStore = postgres.NewReviewStore(db)
	app.bundleStore = postgres.NewBundleStore(db)

	app.srsService = srs.NewServiceWithParams(srs.NewParams(srs.ParamsConfig{
		RetentionThreshold: cfg.SRS.RetentionThreshold,
		GracePeriod:        time.Duration(cfg.SRS.GracePeriodHours) * time.Hour,
		TailHalvingDays:    cfg.SRS.TailHalvingDays,
	}))

	app.questionProvider, err = gemini.NewProvider(
		ctx,
		logger.With(slog.String("component", "question_provider")),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize question provider: %w", err)
	}

	app.wordService = word.NewService(app.userStore, app.wordStore, logger)
	app.reviewService = review.NewService(db, app.wordStore, app.reviewStore, app.srsService, logger)
	app.batchService = batch.NewService(
		app.userStore,
		app.wordStore,
		app.bundleStore,
		app.questionProvider,
		app.srsService.GracePeriod(),
		cfg.Batch,
		logger,
	)

	logger.Info("application initialized")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup releases application resources during shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
}
