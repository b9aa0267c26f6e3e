package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"lending-ledger/cmd/bootstrap"
	"lending-ledger/internal/infra/db"
	"lending-ledger/internal/pkg/config"
	"lending-ledger/internal/pkg/errs"
	"lending-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// 設定ミスでもデバッグ情報を公開しない（フェイルセーフ）
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           lending-ledger
// @version         1.0
// @description     Shared equipment lending: catalog, lending requests and approvals.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("🚀 サーバーを起動します", "address", listenAddr, "mode", gin.Mode(), "store", cfg.Store.Driver)
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("サーバーの起動に失敗しました", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 サーバーを停止します")
			return nil
		},
	})
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lending-ledger",
		Short:         "Shared equipment lending service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newDispatchCmd(),
	)
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (and the outbox dispatcher when OUTBOX_ENABLED)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	app := fx.New(
		bootstrap.Module(cfg),
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		return err
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
	}

	slog.Info("アプリケーションが正常に停止しました")
	return nil
}

func newMigrateCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger := bootstrap.NewLogger(cfg)

			pool, cleanup, err := db.Connect(cmd.Context(), cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			applied, err := db.Migrate(cmd.Context(), pool, dir, logger)
			if err != nil {
				return err
			}
			logger.Info("migrations applied", "count", applied)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "migrations", "directory holding *.sql migrations")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var (
		approverEmail    string
		approverPassword string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo inventory into an empty catalog, optionally with an approver account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			var (
				catalog commands.CatalogCommands
				auth    commands.AuthCommands
				logger  *slog.Logger
			)
			app := fx.New(
				bootstrap.CoreModule(cfg),
				fx.NopLogger,
				fx.Populate(&catalog, &auth, &logger),
			)
			ctx := cmd.Context()
			if err := app.Start(ctx); err != nil {
				return err
			}
			defer func() { _ = app.Stop(context.Background()) }()

			if _, err := catalog.SeedCatalog(ctx); err != nil {
				return err
			}

			if approverEmail == "" {
				return nil
			}
			_, err = auth.Register(ctx, commands.RegisterInput{
				FirstName: "Lab",
				LastName:  "Operator",
				Email:     approverEmail,
				Password:  approverPassword,
				Role:      "approver",
			})
			switch {
			case errs.Is(err, errs.ErrConflict):
				logger.Info("approver already exists", "email", approverEmail)
				return nil
			case err != nil:
				return err
			}
			logger.Info("approver created", "email", approverEmail)
			return nil
		},
	}
	cmd.Flags().StringVar(&approverEmail, "approver-email", "", "create an approver account with this email")
	cmd.Flags().StringVar(&approverPassword, "approver-password", "", "password for the approver account")
	return cmd
}

func newDispatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch",
		Short: "Run only the outbox dispatcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			app := fx.New(
				bootstrap.CoreModule(cfg),
				bootstrap.DispatcherModule,
			)
			if err := app.Start(context.Background()); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			return app.Stop(context.Background())
		},
	}
}
