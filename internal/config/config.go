// internal/config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RemoteConfig は進捗を保持しているリモートサービスへの接続設定
type RemoteConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryMax   int           `mapstructure:"retry_max"`
	RetryWait  time.Duration `mapstructure:"retry_wait"`
	ToggleMode string        `mapstructure:"toggle_mode"` // "set" または "toggle"
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "postgres" または "sqlite"
	URL    string `mapstructure:"url"`
}

type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
	Issuer    string `mapstructure:"issuer"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Remote   RemoteConfig   `mapstructure:"remote"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	// .env があれば環境変数として読み込む (無くても問題ない)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with OS environment variables")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// 例: APP_REMOTE_BASE_URL -> remote.base_url
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	applyDefaults(&cfg)
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Remote API: %s (toggle mode: %s)", Cfg.Remote.BaseURL, Cfg.Remote.ToggleMode)
	return nil
}

// setDefaults は環境変数だけで設定する場合にもキーを viper に認識させるためのもの
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("remote.base_url", "")
	v.SetDefault("remote.timeout", DefaultRemoteTimeout)
	v.SetDefault("remote.retry_max", DefaultRemoteRetryMax)
	v.SetDefault("remote.retry_wait", DefaultRemoteRetryWait)
	v.SetDefault("remote.toggle_mode", ToggleModeSet)
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("database.url", DefaultDatabaseURL)
	v.SetDefault("session.ttl", DefaultSessionTTL)
	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.issuer", AppName)
}

// applyDefaults は不正な値や空の値をデフォルト値で補います。
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Remote.BaseURL == "" {
		log.Println("Warning: Remote API base URL is not set in config.")
	}
	cfg.Remote.BaseURL = strings.TrimRight(cfg.Remote.BaseURL, "/")
	if cfg.Remote.Timeout <= 0 {
		cfg.Remote.Timeout = DefaultRemoteTimeout
	}
	if cfg.Remote.RetryMax < 0 {
		cfg.Remote.RetryMax = 0
	}
	if cfg.Remote.RetryWait <= 0 {
		cfg.Remote.RetryWait = DefaultRemoteRetryWait
	}
	switch cfg.Remote.ToggleMode {
	case ToggleModeSet, ToggleModeToggle:
	default:
		log.Printf("Unknown toggle mode '%s', using '%s'", cfg.Remote.ToggleMode, ToggleModeSet)
		cfg.Remote.ToggleMode = ToggleModeSet
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DefaultDatabaseDriver
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = DefaultSessionTTL
	}
	if cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = AppName
	}
}
