// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "dsa-tracker"
	AppVersion = "0.3.0"
)

// トグルの送り方
const (
	ToggleModeSet    = "set"    // PUT /progress/{id} で完了フラグを明示的にセットする
	ToggleModeToggle = "toggle" // POST /progress/toggle でリモートに反転させる
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultRemoteTimeout   = 10 * time.Second
	DefaultRemoteRetryMax  = 2
	DefaultRemoteRetryWait = 200 * time.Millisecond
	DefaultDatabaseDriver  = "sqlite"
	DefaultDatabaseURL     = "file:dsa_tracker.db?cache=shared"
	DefaultSessionTTL      = 24 * time.Hour
)
