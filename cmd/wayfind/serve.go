package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/wayfind-dev/wayfind"
	"github.com/wayfind-dev/wayfind/internal/config"
	"github.com/wayfind-dev/wayfind/internal/demo"
	"github.com/wayfind-dev/wayfind/pkg/middleware"
	"github.com/wayfind-dev/wayfind/pkg/store"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		strategy string
		dataPath string
		static   string
		metrics  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo notes application",
		Long: `Run the demo notes application.

Configuration is read from wayfind.json in the working directory;
flags override it. Notes persist in an embedded bbolt database.

Examples:
  wayfind serve
  wayfind serve --addr=:9000 --strategy=fragment
  wayfind serve --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, strategy, dataPath, static, metrics)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from wayfind.json)")
	cmd.Flags().StringVar(&strategy, "strategy", "", `History strategy: "path" or "fragment"`)
	cmd.Flags().StringVar(&dataPath, "data", "", "Database path (default from wayfind.json)")
	cmd.Flags().StringVar(&static, "static", "", "Directory served under /static/")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics at /metrics")

	return cmd
}

func runServe(addr, strategy, dataPath, static string, metrics bool) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Address = addr
	}
	if strategy != "" {
		cfg.Strategy = strategy
	}
	if dataPath != "" {
		cfg.DataPath = dataPath
	}
	if static != "" {
		cfg.StaticDir = static
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.LogLevel)

	notes, err := store.OpenBolt(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer notes.Close()

	demoApp, err := demo.NewApp(notes)
	if err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}

	appCfg := wayfind.Config{
		Address:   cfg.Address,
		Strategy:  wayfind.Strategy(cfg.Strategy),
		StaticDir: cfg.StaticDir,
		Logger:    logger,
	}
	if metrics {
		appCfg.Hooks = append(appCfg.Hooks, middleware.Prometheus())
		appCfg.MetricsHandler = promhttp.Handler()
	}

	app := wayfind.New(appCfg)
	demoApp.Register(app.Handle)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Run(ctx)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
