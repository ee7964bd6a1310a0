package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clean-backend/internal/cache"
	"clean-backend/internal/client"
	"clean-backend/internal/config"
	"clean-backend/internal/logging"
	"clean-backend/internal/middleware"
	"clean-backend/internal/site"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger := logging.New(cfg.LogLevel, cfg.Development)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var responses cache.Cache
	if cfg.UseRedisCache() {
		responses, err = cache.NewRedis(ctx, cfg.RedisURL, "clean-site:", cfg.CacheTTL)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
	} else {
		responses = cache.NewMemory(cfg.CacheTTL)
	}

	api := client.New(cfg.APIBaseURL, client.WithCache(responses), client.WithStaleTime(cfg.CacheTTL))
	defer api.Close()

	pages, err := site.New(api)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse templates")
	}

	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.TrustedProxyHeaders())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders())
	pages.Register(r)

	srv := &http.Server{
		Addr:              ":" + cfg.SitePort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info().Str("port", cfg.SitePort).Str("api", cfg.APIBaseURL).Bool("redis", cfg.UseRedisCache()).Msg("Site starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start site")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
