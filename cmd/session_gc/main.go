// session_gc は期限切れのセッションを削除するバッチです。
// サーバーを複数台で動かす場合は、サーバー内の定期削除の代わりに cron などから実行します。
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"dsa_tracker/internal/config"
	"dsa_tracker/internal/logging"
	"dsa_tracker/internal/middleware"
	"dsa_tracker/internal/model"
	"dsa_tracker/internal/repository"
)

func main() {
	os.Exit(run())
}

// run は終了コードを返します。defer した後始末を os.Exit で飛ばさないため main から分けています。
func run() int {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	dryRun := flag.Bool("dry-run", false, "count expired sessions without deleting them")
	flag.Parse()

	if err := config.LoadConfig(*configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		return 1
	}
	level, _ := logging.ParseLevel(config.Cfg.Log.Level)
	logger := slog.New(logging.NewHandler(os.Stderr, os.Getenv("APP_ENV"), level))

	db, err := repository.NewDB(config.Cfg.Database.Driver, config.Cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Failed to connect database", slog.Any("error", err))
		return 1
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return 1
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
		}
	}()

	ctx, cancel := context.WithTimeout(middleware.WithLogger(context.Background(), logger), time.Minute)
	defer cancel()

	now := time.Now()
	if *dryRun {
		var count int64
		if err := db.WithContext(ctx).Model(&model.Session{}).Where("expires_at <= ?", now).Count(&count).Error; err != nil {
			logger.Error("Failed to count expired sessions", slog.Any("error", err))
			return 1
		}
		logger.Info("Expired sessions (dry run)", slog.Int64("count", count))
		return 0
	}

	deleted, err := repository.NewGormSessionRepository().DeleteExpired(ctx, db, now)
	if err != nil {
		logger.Error("Failed to delete expired sessions", slog.Any("error", err))
		return 1
	}
	logger.Info("Expired sessions deleted", slog.Int64("count", deleted))
	return 0
}
