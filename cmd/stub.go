package cmd

import (
	"context"
	"log"
	"os"
	"time"

	"storage-sdk/core/config"
	"storage-sdk/core/logger"
	"storage-sdk/feature/stub"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// stubCmd represents the stub command
var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run a stub storage server for local development",
	Long: `Starts an HTTP server that answers every storage SDK route with scripted
envelopes. Responses come from --fixtures (or SERVER_FIXTURES); routes without a
fixture return an empty success envelope. Nothing is stored.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		if fixtures, _ := cmd.Flags().GetString("fixtures"); fixtures != "" {
			cfg.Server.Fixtures = fixtures
		}

		svc := stub.NewService(logg)
		if cfg.Server.Fixtures != "" {
			if err := svc.LoadFixtures(cfg.Server.Fixtures); err != nil {
				logg.Fatal("Failed to load fixtures", zap.Error(err))
			}
		}

		app := stub.NewApp(cfg.Server, svc, logg)

		go func() {
			logg.Info("Starting stub server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Stub server failed to start", zap.Error(err))
			}
		}()

		wait := gfshutdown.GracefulShutdown(
			context.Background(),
			shutdownTimeout,
			map[string]gfshutdown.Operation{
				"stub-server": func(ctx context.Context) error {
					logg.Info("Shutting down stub server...")
					return app.ShutdownWithContext(ctx)
				},
			},
		)

		exitCode := <-wait
		_ = logg.Sync()
		os.Exit(exitCode)
	},
}

func init() {
	stubCmd.Flags().String("fixtures", "", "YAML file with scripted responses per route")
	RootCmd.AddCommand(stubCmd)
}
