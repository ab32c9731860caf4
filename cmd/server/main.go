// @title                       Portfolio API
// @version                     1.0
// @description                 Backend of a personal portfolio site: profile, projects, contact messages, analytics and visualizations.
// @BasePath                    /api
// @securityDefinitions.apikey  AdminToken
// @in                          header
// @name                        X-Admin-Token
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token from /admin/login.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/portfolio-site/portfolio-api/internal/api"
	"github.com/portfolio-site/portfolio-api/internal/api/handler"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
	"github.com/portfolio-site/portfolio-api/internal/core/service"
	"github.com/portfolio-site/portfolio-api/internal/infrastructure/config"
	mongodb "github.com/portfolio-site/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/portfolio-site/portfolio-api/internal/infrastructure/db/redis"
	"github.com/portfolio-site/portfolio-api/internal/infrastructure/messaging"
	"github.com/portfolio-site/portfolio-api/internal/infrastructure/queue"
	"github.com/portfolio-site/portfolio-api/internal/infrastructure/storage"
	"github.com/portfolio-site/portfolio-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.New(logger.Options{})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "portfolio-api",
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Data stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Optional integrations ---
	var fileStorage ports.FileStorage
	storageCfg := storage.Config{
		CloudName: cfg.Cloudinary.CloudName,
		APIKey:    cfg.Cloudinary.APIKey,
		APISecret: cfg.Cloudinary.APISecret,
	}
	if storageCfg.Enabled() {
		cld, err := storage.NewCloudinaryStorage(storageCfg)
		if err != nil {
			return err
		}
		fileStorage = cld
	} else {
		log.Warn().Msg("cloudinary not configured, resume uploads disabled")
	}

	var notifier ports.ContactNotifier
	if len(cfg.Kafka.Brokers) > 0 {
		kn, err := messaging.NewKafkaNotifier(cfg.Kafka.Brokers, cfg.Kafka.ContactTopic, logger.Component(log, "kafka"))
		if err != nil {
			return err
		}
		defer kn.Close()
		notifier = kn
	}

	// --- Repositories ---
	profileRepo := mongodb.NewProfileRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	contactRepo := mongodb.NewContactRepository(db)
	analyticsRepo := mongodb.NewAnalyticsRepository(db)
	visualizationRepo := mongodb.NewVisualizationRepository(db)
	resumeRepo := mongodb.NewResumeRepository(db)

	// --- Services ---
	analyticsService := service.NewAnalyticsService(analyticsRepo, contactRepo, log)
	recorder := queue.NewRecorder(cfg.Analytics.Workers, analyticsService, logger.Component(log, "analytics-recorder"))

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	recorder.Start(workerCtx)
	defer func() {
		stopWorkers()
		recorder.Wait()
	}()

	projectService := service.NewProjectService(projectRepo, log)
	profileService := service.NewProfileService(profileRepo, projectService, log)
	contactService := service.NewContactService(
		contactRepo,
		redisdb.NewRateLimiter(rdb),
		recorder,
		notifier,
		service.RateLimitPolicy{Limit: cfg.Contact.RateLimit, Window: cfg.Contact.RateWindow},
		log,
	)

	if cfg.SeedOnStart {
		if _, err := profileService.Seed(ctx); err != nil {
			return err
		}
	}

	e := api.NewRouter(api.Services{
		Profile:        profileService,
		Projects:       projectService,
		Contact:        contactService,
		Analytics:      analyticsService,
		Recorder:       recorder,
		Visualizations: service.NewVisualizationService(visualizationRepo, log),
		Resume:         service.NewResumeService(resumeRepo, fileStorage, recorder, cfg.Cloudinary.Folder, cfg.Resume.MaxBytes, log),
		Admin:          service.NewAdminService(cfg.Auth.AdminPasswordHash, cfg.Auth.JWTSecret, cfg.Auth.JWTTTL),
		Checks: map[string]handler.Check{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
	}, api.Options{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.AllowedOrigins,
		AdminToken:     cfg.Auth.AdminToken,
		JWTSecret:      cfg.Auth.JWTSecret,
		TrustedProxies: cfg.TrustedProxies,
		ResumeMaxBytes: cfg.Resume.MaxBytes,
		Logger:         logger.Component(log, "http"),
	})

	if cfg.Auth.AdminToken == "" && cfg.Auth.AdminPasswordHash == "" {
		log.Warn().Msg("no admin credential configured, admin routes will reject every request")
	}

	// --- Serve until a signal arrives ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
