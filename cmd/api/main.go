package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	clientprom "github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/config"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/email"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/handler"
	catalogHandler "github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/handler/catalog"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/handler/contact"
	doctorHandler "github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/handler/doctor"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/handler/health"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/handler/location"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/handler/prometheus"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/middleware"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/repository"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/repository/jobstore"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/repository/sqlstore"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/router"
	catalogService "github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/service/catalog"
	doctorService "github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/service/doctor"
	notificationService "github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/service/notification"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/logger"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/metrics"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	appLogger := setupLogging(cfg.Log)

	db, err := sqlstore.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	registry := clientprom.NewRegistry()
	appMetrics := metrics.New("sacrocuore", registry)

	report, err := sqlstore.NewBootstrapper(db, nil, appLogger).Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap schema")
	}
	log.Info().
		Int("created", len(report.Created)).
		Int("existing", len(report.Existing)).
		Str("driver", cfg.Database.Driver).
		Msg("schema ready")

	// Initialize repositories
	base := sqlstore.NewBaseRepository(db, appMetrics)
	locationRepo := sqlstore.NewLocationRepository(base)
	serviceRepo := sqlstore.NewServiceRepository(base)
	doctorRepo := sqlstore.NewDoctorRepository(base)
	areaRepo := sqlstore.NewAreaRepository(base)
	galleryRepo := sqlstore.NewPhotoGalleryRepository(base)

	notificationRepo, readiness, closeJobs := newNotificationRepository(cfg)
	defer closeJobs()

	// Initialize services
	catalogSvc := catalogService.NewService(locationRepo, serviceRepo, areaRepo, galleryRepo)
	doctorSvc := doctorService.NewService(doctorRepo)

	var mailer email.Service
	if cfg.Mail.Enabled {
		mailer = email.NewSMTPService(cfg.Mail)
	} else {
		mailer = email.NewLogService(appLogger)
	}

	dispatcher := notificationService.NewDispatcher(
		notificationService.Config{
			Workers:       cfg.Notification.Workers,
			QueueSize:     cfg.Notification.QueueSize,
			RetryAttempts: cfg.Notification.RetryAttempts,
			RetryDelay:    cfg.Notification.RetryDelay,
			SendTimeout:   cfg.Server.RequestTimeout,
			LookupTTL:     cfg.Cache.LookupTTL,
		},
		notificationRepo,
		serviceRepo,
		mailer,
		appMetrics,
		appLogger,
	)
	dispatcher.Start(context.Background())

	// Initialize handlers
	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.CORS.AllowedOrigins

	r := router.NewRouter(
		location.NewHandler(catalogSvc),
		catalogHandler.NewHandler(catalogSvc),
		doctorHandler.NewHandler(doctorSvc, handler.PageLimits{
			Default: cfg.Server.DefaultPageSize,
			Max:     cfg.Server.MaxPageSize,
		}),
		contact.NewHandler(dispatcher),
		health.NewHandler(db, readiness),
		prometheus.New(registry),
		router.RouterConfig{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimit:        rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:        cfg.RateLimit.Burst,
			CORSConfig:       cors,
			CacheMaxAge:      cfg.Cache.MaxAge,
			RequestTimeout:   cfg.Server.RequestTimeout,
			StaticDir:        cfg.Server.StaticDir,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Bool("test_mode", cfg.TestMode).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	// Pending mails are still delivered.
	dispatcher.Stop()

	log.Info().Msg("server exited properly")
}

func setupLogging(cfg config.LogConfig) *logger.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	if level > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	return logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Pretty:     cfg.Pretty,
	})
}

func newNotificationRepository(cfg *config.Config) (repository.NotificationRepository, map[string]health.Check, func()) {
	if cfg.Redis.URL == "" {
		return jobstore.NewMemoryStore(cfg.Notification.StatusTTL), nil, func() {}
	}

	client, err := jobstore.NewRedisClient(context.Background(), cfg.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	checks := map[string]health.Check{
		"job_store": func(ctx context.Context) error { return client.Ping(ctx).Err() },
	}
	return jobstore.NewRedisStore(client, cfg.Notification.StatusTTL), checks, func() { client.Close() }
}
