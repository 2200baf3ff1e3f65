package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dentallab/cmd"
	"dentallab/internal/adapters/out/postgres/migrations"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "dentallab",
		Short:         "Dental lab ordering service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newMigrateCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			configs, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return serve(ctx, configs, logger)
		},
	}
}

func newMigrateCommand() *cobra.Command {
	var down bool
	command := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return migrate(c.Context(), configs, logger, down)
		},
	}
	command.Flags().BoolVar(&down, "down", false, "roll back the most recent migration")
	return command
}

func setup() (cmd.Config, *zap.Logger, error) {
	configs, err := cmd.LoadConfig()
	if err != nil {
		return cmd.Config{}, nil, err
	}
	logger, err := cmd.NewLogger(configs.Log)
	if err != nil {
		return cmd.Config{}, nil, err
	}
	return configs, logger, nil
}

func serve(ctx context.Context, configs cmd.Config, logger *zap.Logger) error {
	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("Failed to release resources", zap.Error(err))
		}
	}()

	e, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("port", configs.HTTP.Port))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTP.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.HTTP.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func migrate(ctx context.Context, configs cmd.Config, logger *zap.Logger, down bool) error {
	db, err := sql.Open("postgres", configs.DB.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if down {
		result, err := migrations.Down(ctx, db)
		if err != nil {
			return err
		}
		if result != nil {
			logger.Info("Migration rolled back", zap.Int64("version", result.Version), zap.String("source", result.Source))
		}
		return nil
	}

	results, err := migrations.Up(ctx, db)
	if err != nil {
		return err
	}
	for _, r := range results {
		logger.Info("Migration applied", zap.Int64("version", r.Version), zap.String("source", r.Source))
	}
	if len(results) == 0 {
		logger.Info("Database is up to date")
	}
	return nil
}
