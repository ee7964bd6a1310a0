package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clean-backend/internal/config"
	"clean-backend/internal/database"
	"clean-backend/internal/handlers"
	"clean-backend/internal/logging"
	"clean-backend/internal/middleware"
	"clean-backend/internal/seed"
	"clean-backend/internal/store"
	"clean-backend/internal/upload"

	"github.com/gin-contrib/cors"
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

	s, closeStore := openStore(cfg)
	defer closeStore()

	if !cfg.UseDatabase() || cfg.SeedContent {
		if _, err := seed.Content(ctx, s); err != nil {
			logger.Fatal().Err(err).Msg("Failed to seed content")
		}
	}
	if err := seed.Admin(ctx, s.Users, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Fatal().Err(err).Msg("Failed to bootstrap admin")
	}

	uploads := upload.NewService(imageStorage(cfg), cfg.MaxUploadSize, cfg.UploadDefaultFolder)

	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.TrustedProxyHeaders())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if !cfg.UseCloudinary() {
		r.Static("/uploads", cfg.UploadDir)
	}

	handlers.RegisterRoutes(r, handlers.Deps{
		Store:     s,
		Uploads:   uploads,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info().Str("port", cfg.Port).Bool("database", cfg.UseDatabase()).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

// openStore returns the SQL store when DATABASE_URL is set and the in-memory
// store otherwise.
func openStore(cfg *config.Config) (*store.Store, func()) {
	if !cfg.UseDatabase() {
		log.Warn().Msg("DATABASE_URL not set, content is kept in memory and lost on restart")
		return store.NewMemory(), func() {}
	}

	db, dialect, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := database.Migrate(db, dialect); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}
	return store.NewSQL(db), func() { db.Close() }
}

func imageStorage(cfg *config.Config) upload.Storage {
	if cfg.UseCloudinary() {
		storage, err := upload.NewCloudinaryStorage(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to configure Cloudinary")
		}
		log.Info().Str("cloud", cfg.CloudinaryCloudName).Msg("Uploading images to Cloudinary")
		return storage
	}

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create uploads directory")
	}
	return upload.NewLocalStorage(cfg.UploadDir, cfg.PublicBaseURL)
}
