package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"valentine_week/internal/config"
	"valentine_week/internal/logging"
	"valentine_week/internal/metrics"
	"valentine_week/internal/middleware"
	"valentine_week/internal/model"
	"valentine_week/internal/repository"
	"valentine_week/internal/service"
)

// cliApp はサブコマンド間で共有する状態
type cliApp struct {
	out io.Writer

	configDir   string
	driver      string
	databaseURL string
	logLevel    string

	logger   *slog.Logger
	backend  *repository.Backend
	progress service.ProgressService
}

// run はコマンドを実行し、RunE の成否にかかわらず接続を閉じます
func run(out io.Writer, args []string) error {
	root, app := newRootCmd(out)
	root.SetArgs(args)
	defer func() {
		if err := app.close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close store: %v\n", err)
		}
	}()
	return root.Execute()
}

func newRootCmd(out io.Writer) (*cobra.Command, *cliApp) {
	app := &cliApp{out: out}

	root := &cobra.Command{
		Use:           "progressctl",
		Short:         "Valentine's Week の進捗ドキュメントを操作する管理ツール",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.open(cmd.Context())
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&app.configDir, "config", "configs", "config.yaml を置いたディレクトリ")
	root.PersistentFlags().StringVar(&app.driver, "driver", "", "データベースドライバ (設定ファイルの値を上書き)")
	root.PersistentFlags().StringVar(&app.databaseURL, "database-url", "", "接続先URL (設定ファイルの値を上書き)")
	root.PersistentFlags().StringVar(&app.logLevel, "log-level", "warn", "ログレベル")

	root.AddCommand(
		app.showCmd(),
		app.completeCmd(),
		app.resetCmd(),
		app.migrateCmd(),
	)
	return root, app
}

func (a *cliApp) open(ctx context.Context) error {
	_ = godotenv.Load()

	cfg, err := config.Load(a.configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.driver != "" {
		cfg.Database.Driver = a.driver
	}
	if a.databaseURL != "" {
		cfg.Database.URL = a.databaseURL
	}

	a.logger = logging.New(os.Stderr, a.logLevel, os.Getenv("APP_ENV"))

	a.backend, err = repository.Open(ctx, cfg.Database, a.logger)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Database.Driver, err)
	}
	a.progress = service.NewProgressService(a.backend.Progress, cfg, metrics.NoopRecorder{})
	return nil
}

func (a *cliApp) close() error {
	if a.backend == nil {
		return nil
	}
	err := a.backend.Close(context.Background())
	a.backend = nil
	return err
}

func (a *cliApp) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return middleware.WithLogger(ctx, a.logger)
}

func (a *cliApp) printJSON(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *cliApp) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "現在の進捗を表示する (なければ作成する)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.progress.GetProgress(a.context(cmd))
			if err != nil {
				return err
			}
			return a.printJSON(p)
		},
	}
}

func (a *cliApp) completeCmd() *cobra.Command {
	var day int
	cmd := &cobra.Command{
		Use:   "complete",
		Short: "指定した日を完了にする",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.progress.CompleteDay(a.context(cmd), day)
			if err != nil {
				return err
			}
			return a.printJSON(p)
		},
	}
	cmd.Flags().IntVar(&day, "day", 0, fmt.Sprintf("完了にする日 (1-%d)", model.DayCount))
	_ = cmd.MarkFlagRequired("day")
	return cmd
}

func (a *cliApp) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "進捗を削除する (次回の取得で新しく作成される)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.progress.ResetProgress(a.context(cmd)); err != nil {
				return err
			}
			return a.printJSON(model.MessageResponse{Message: "Progress reset successfully"})
		},
	}
}

// migrateCmd は接続確認だけを行う。GORM 系のドライバは Open の中でマイグレーション済み
func (a *cliApp) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "スキーマを作成し、ストアへの接続を確認する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.backend.Ping(a.context(cmd)); err != nil {
				return err
			}
			return a.printJSON(map[string]string{"status": "ok", "driver": a.backend.Driver})
		},
	}
}
