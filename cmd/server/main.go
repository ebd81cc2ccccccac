package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"song-suggester/internal/adapter/api"
	"song-suggester/internal/adapter/client"
	"song-suggester/internal/config"
	"song-suggester/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	envFile string
	port    int
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	fs.IntVarP(&opts.port, "port", "p", 0, "listen port (overrides PORT)")
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "song-suggester",
		Short:         "HTTP proxy that asks Gemini for songs similar to a given list",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	bindFlags(cmd.Flags(), opts)
	return cmd
}

func run(ctx context.Context, opts *options) error {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.port != 0 {
		cfg.Port = opts.port
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))
	if cfg.AuthDisabled {
		slog.Warn("API key check disabled for /filter-songs")
	}

	gemini, err := client.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return fmt.Errorf("init genai client: %w", err)
	}

	suggester := usecase.NewSuggester(gemini)

	// Initialize API Layer (Delivery Layer)
	app := fiber.New(fiber.Config{
		AppName: "Song Suggester",
	})

	handler := api.NewSuggestionHandler(suggester)
	api.SetupRouter(app, cfg, handler)

	slog.Info("song suggester running", "addr", cfg.Addr(), "model", cfg.GeminiModel)
	return app.Listen(cfg.Addr())
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
