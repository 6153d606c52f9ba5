// Package logging は設定に基づいてアプリケーションの slog ロガーを組み立てます。
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel は設定ファイルのログレベル文字列を slog.Level に変換します。
// 不明な値は Info として扱い、ok=false を返します。
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// NewHandler は APP_ENV=dev なら tint、それ以外は JSON のハンドラーを返します。
func NewHandler(w io.Writer, appEnv string, level slog.Leveler) slog.Handler {
	if strings.ToLower(appEnv) == "dev" {
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
}
