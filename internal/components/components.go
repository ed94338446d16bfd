package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/armelyara/TraficDay/internal/api"
	"github.com/armelyara/TraficDay/internal/config"
	"github.com/armelyara/TraficDay/internal/push"
	"github.com/armelyara/TraficDay/internal/redis"
	"github.com/armelyara/TraficDay/internal/service"
	"github.com/armelyara/TraficDay/internal/storage/memory"
	"github.com/armelyara/TraficDay/internal/storage/postgres"
	"github.com/armelyara/TraficDay/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Service    *service.Service
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	comps := &Components{logger: logger}

	var (
		obstacles service.ObstacleStore
		intents   service.IntentStore
		users     service.UserDirectory
		queue     service.IntentQueue
		cache     service.ObstacleCache
	)

	switch cfg.StoreDriver {
	case "postgres":
		logger.Info("Initializing Postgres")
		pg, err := postgres.NewPostgres(ctx, cfg, logger)
		if err != nil {
			logger.Error("Failed to init postgres", slog.Any("error", err))
			return nil, fmt.Errorf("failed to init postgres: %w", err)
		}
		comps.Postgres = pg
		obstacles = pg.Obstacles
		intents = pg.Obstacles
		users = pg.Users

		logger.Info("Initializing Redis")
		redisClient, err := redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			pg.Pool.Close()
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		comps.Redis = redisClient
		queue = redis.NewIntentQueue(redisClient, redis.DefaultIntentQueueKey)
		cache = redis.NewObstacleCache(redisClient)

	case "memory":
		logger.Info("Using in-memory store")
		store := memory.NewStore()
		obstacles = store
		intents = store
		users = memory.NewDirectory()
		queue = memory.NewQueue(256)
		cache = memory.NewCache()

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	var sender service.Sender
	if cfg.Push.Disabled {
		sender = push.NewNoopSender(logger)
	} else {
		sender = push.NewWebhookSender(cfg.Push.GatewayURL, cfg.Push.Timeout, logger)
	}

	clock := service.SystemClock{}
	engine := cfg.Engine

	escalation := service.NewEscalationEngine(intents, queue, clock, logger, engine.NotificationMin)
	detector := service.NewDuplicateDetector(obstacles, escalation, logger, engine.DuplicateRadiusKm)
	recipients := service.NewRecipientResolver(obstacles, users, logger, engine.NotificationRadiusKm)

	svc := &service.Service{
		Reporter:   service.NewReportService(obstacles, clock, logger, engine.DefaultObstacleTTL),
		Confirmer:  service.NewConfirmService(obstacles, escalation, logger),
		Escalation: escalation,
		Dispatcher: service.NewDispatcher(queue, intents, recipients, sender, users, clock, logger, cfg.Push.Timeout, engine.StoreTimeout),
		Reaper:     service.NewReaper(obstacles, intents, queue, clock, logger, engine.ReaperInterval, engine.ResolutionMin, engine.IntentRetryAfter, engine.StoreTimeout),
		Location:   service.NewLocationService(obstacles, cache, logger, engine.NotificationRadiusKm, engine.CacheTTL),
		Users:      service.NewUserService(users, clock, logger),
		Admin:      service.NewAdminService(obstacles, logger),
		Stats:      service.NewStatsService(obstacles, intents, clock),
	}

	// Every new report runs through duplicate detection before it can
	// count toward anyone's notification.
	obstacles.SubscribeCreated(detector.OnObstacleCreated)

	comps.Service = svc
	comps.HttpServer = api.NewServer(cfg, logger, svc)
	logger.Info("Initialized server")

	return comps, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	if c.Postgres != nil {
		c.Postgres.Pool.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
