package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dsa_tracker/internal/config"
	"dsa_tracker/internal/handlers"
	"dsa_tracker/internal/logging"
	"dsa_tracker/internal/middleware"
	"dsa_tracker/internal/remote"
	"dsa_tracker/internal/repository"
	"dsa_tracker/internal/service"
)

// sessionPurgeInterval は期限切れセッションを掃除する間隔です。
const sessionPurgeInterval = 10 * time.Minute

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	level, ok := logging.ParseLevel(config.Cfg.Log.Level)
	if !ok {
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}
	logLevel.Set(level)

	appEnv := os.Getenv("APP_ENV")
	logger := slog.New(logging.NewHandler(os.Stderr, appEnv, logLevel))
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("version", config.AppVersion), slog.String("APP_ENV", appEnv))

	if config.Cfg.JWT.SecretKey == "" {
		slog.Error("jwt.secret_key must be set (APP_JWT_SECRET_KEY)")
		os.Exit(1)
	}

	// 1. セッションDB
	db, err := repository.NewDB(config.Cfg.Database.Driver, config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()
	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. Dependency Injection
	remoteClient := remote.NewClient(config.Cfg.Remote, logger)
	sessionRepo := repository.NewGormSessionRepository()
	boards := service.NewBoardRegistry()

	authService := service.NewAuthService(db, sessionRepo, remoteClient, boards, &config.Cfg)
	trackerService := service.NewTrackerService(remoteClient, boards, &config.Cfg)

	// 3. Router
	router := handlers.NewRouter(handlers.RouterDeps{
		Logger:         logger,
		DB:             db,
		CORS:           config.Cfg.CORS,
		AuthService:    authService,
		TrackerService: trackerService,
	})

	// 4. 期限切れセッションの定期削除
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go purgeSessions(middleware.WithLogger(ctx, logger), authService)

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: config.Cfg.Remote.Timeout*3 + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port), slog.String("remote", config.Cfg.Remote.BaseURL))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exiting")
}

func purgeSessions(ctx context.Context, authService service.AuthService) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := authService.PurgeExpired(ctx); err != nil {
				middleware.GetLogger(ctx).Warn("Failed to purge expired sessions", slog.Any("error", err))
			}
		}
	}
}
