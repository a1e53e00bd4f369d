package main

import (
	"context"
	"os"
	"time"

	"github.com/WangRL15/Health-Management-Web-Application/config"
	"github.com/WangRL15/Health-Management-Web-Application/repository"
	"github.com/WangRL15/Health-Management-Web-Application/routes"
	"github.com/WangRL15/Health-Management-Web-Application/services"
	"github.com/WangRL15/Health-Management-Web-Application/sessions"
	"github.com/WangRL15/Health-Management-Web-Application/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const sessionSweepInterval = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	gin.SetMode(cfg.GinMode)
	logger := utils.NewLogger(cfg.LogLevel, cfg.GinMode != gin.ReleaseMode)
	log.Logger = logger

	db, err := config.OpenDB(cfg.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	if err := config.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}
	logger.Info().Str("driver", cfg.DB.Driver).Msg("database ready")

	sessionStore, closeSessions := openSessionStore(cfg)
	defer closeSessions()

	r := routes.SetupRouter(routes.Dependencies{
		Logger:       logger,
		Store:        repository.NewGormStore(db),
		Sessions:     sessionStore,
		Signer:       utils.NewSessionSigner(cfg.SessionSecret, cfg.SessionTTL),
		SessionTTL:   cfg.SessionTTL,
		CookieSecure: cfg.CookieSecure,
		Hub:          services.NewRealtimeHub(),
	})

	logger.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

// openSessionStore uses Redis when REDIS_ADDR is set and reachable at start-up.
func openSessionStore(cfg config.Config) (sessions.Store, func()) {
	if cfg.RedisAddr == "" {
		mem := sessions.NewMemoryStore(cfg.SessionTTL, sessionSweepInterval)
		return mem, mem.Close
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable")
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("sessions stored in redis")
	return sessions.NewRedisStore(client, cfg.SessionTTL), func() { _ = client.Close() }
}
