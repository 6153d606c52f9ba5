// Package cli は端末から進捗を確認・更新するための dsactl コマンドです。
// サーバーを介さず、リモートサービスに直接アクセスします。
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"dsa_tracker/internal/config"
	"dsa_tracker/internal/middleware"
	"dsa_tracker/internal/model"
	"dsa_tracker/internal/remote"
	"dsa_tracker/internal/service"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

const (
	envRemoteURL = "DSA_REMOTE_URL"
	envToken     = "DSA_TOKEN"
)

type options struct {
	remoteURL  string
	token      string
	timeout    time.Duration
	toggleMode string
	verbose    bool
}

// app はコマンド実行時に組み立てる依存関係です。
type app struct {
	opts    *options
	logger  *slog.Logger
	remote  remote.Client
	tracker service.TrackerService
}

// NewRootCommand はサブコマンドを登録したルートコマンドを返します。
func NewRootCommand() *cobra.Command {
	opts := &options{}
	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:   "dsactl",
		Short: "Track DSA practice progress from the terminal",
		Long: `dsactl talks to the DSA progress service directly.
Log in once, export the printed token as DSA_TOKEN, then browse topics,
check the dashboard and toggle problems.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	// .env があれば先に読み込む (無くても問題ない)
	_ = godotenv.Load()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.remoteURL, "remote", os.Getenv(envRemoteURL), "base URL of the progress service (env "+envRemoteURL+")")
	flags.StringVar(&opts.token, "token", os.Getenv(envToken), "bearer token returned by login (env "+envToken+")")
	flags.DurationVar(&opts.timeout, "timeout", config.DefaultRemoteTimeout, "timeout per remote request")
	flags.StringVar(&opts.toggleMode, "toggle-mode", config.ToggleModeSet, "how toggles are sent: set or toggle")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log remote requests")

	rootCmd.AddCommand(
		newLoginCommand(a),
		newTopicsCommand(a),
		newTopicCommand(a),
		newDashboardCommand(a),
		newToggleCommand(a),
	)
	return rootCmd
}

// Execute は dsactl を実行します。
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) init(stderr io.Writer) error {
	if a.opts.remoteURL == "" {
		return fmt.Errorf("remote URL is not set: use --remote or %s", envRemoteURL)
	}
	if a.opts.toggleMode != config.ToggleModeSet && a.opts.toggleMode != config.ToggleModeToggle {
		return fmt.Errorf("unknown toggle mode %q", a.opts.toggleMode)
	}

	level := slog.LevelWarn
	if a.opts.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(tint.NewHandler(stderr, &tint.Options{Level: level, TimeFormat: time.Kitchen}))

	cfg := &config.Config{
		Remote: config.RemoteConfig{
			BaseURL:    a.opts.remoteURL,
			Timeout:    a.opts.timeout,
			RetryMax:   config.DefaultRemoteRetryMax,
			RetryWait:  config.DefaultRemoteRetryWait,
			ToggleMode: a.opts.toggleMode,
		},
	}
	a.remote = remote.NewClient(cfg.Remote, a.logger)
	a.tracker = service.NewTrackerService(a.remote, service.NewBoardRegistry(), cfg)
	return nil
}

// context はコマンドのコンテキストにロガーを載せて返します。
func (a *app) context(cmd *cobra.Command) context.Context {
	return middleware.WithLogger(cmd.Context(), a.logger)
}

// session はトークンから使い捨てのセッションを作ります。CLIではローカルに保存しません。
func (a *app) session() (*model.Session, error) {
	if a.opts.token == "" {
		return nil, fmt.Errorf("not logged in: run `dsactl login` and export %s", envToken)
	}
	return &model.Session{SessionID: uuid.New(), RemoteToken: a.opts.token}, nil
}
