package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/vango-dev/retain/internal/config"
	"github.com/vango-dev/retain/internal/demo"
	"github.com/vango-dev/retain/internal/errors"
	"github.com/vango-dev/retain/pkg/host/htmlhost"
	"github.com/vango-dev/retain/pkg/inspect"
	"github.com/vango-dev/retain/pkg/metrics"
	"github.com/vango-dev/retain/pkg/vdom"
)

// serveFlags are command-line overrides for retain.json.
type serveFlags struct {
	configDir string
	addr      string
	demo      string
	logLevel  string
	keyed     bool
}

func serveCmd() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live inspector",
		Long: `Mount a demo and serve it behind the HTTP inspector.

Open the printed URL to click through the rendered tree and watch the
host mutations stream in. Settings come from retain.json in the config
directory; flags override them.

Examples:
  retain serve
  retain serve --demo todo --keyed
  retain serve --addr 0.0.0.0:8080 --log-level debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServeConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&flags.configDir, "config", "c", ".", "Directory containing retain.json")
	cmd.Flags().StringVarP(&flags.addr, "addr", "a", "", "Listen address (default from retain.json)")
	cmd.Flags().StringVarP(&flags.demo, "demo", "d", "", "Demo to mount: "+strings.Join(demo.Names(), ", "))
	cmd.Flags().StringVarP(&flags.logLevel, "log-level", "l", "", "debug, info, warn or error")
	cmd.Flags().BoolVarP(&flags.keyed, "keyed", "k", false, "Match children by key")

	return cmd
}

// loadServeConfig loads retain.json and applies flag overrides.
func loadServeConfig(cmd *cobra.Command, flags serveFlags) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(flags.configDir)
	if err != nil {
		return nil, err
	}

	if flags.addr != "" {
		cfg.Addr = flags.addr
	}
	if flags.demo != "" {
		cfg.Demo = flags.demo
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if cmd.Flags().Changed("keyed") {
		cfg.Keyed = flags.keyed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, ok := demo.Lookup(cfg.Demo); !ok {
		return nil, errors.New(errors.CodeInvalidConfig).
			WithDetail("Unknown demo " + cfg.Demo).
			WithSuggestion("Choose one of: " + strings.Join(demo.Names(), ", "))
	}
	return cfg, nil
}

// newInspector wires the reconciler, metrics and inspector for cfg.
func newInspector(cfg *config.Config, logger *slog.Logger) (*inspect.Server, error) {
	opts := []vdom.Option{
		vdom.WithLogger(logger),
		vdom.WithTracerName(cfg.Tracing.TracerName),
	}
	if cfg.Keyed {
		opts = append(opts, vdom.WithKeyedChildren())
	}

	var inspectOpts []inspect.Option
	if !cfg.Metrics.Disabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		collector := metrics.New(metrics.WithRegistry(reg), metrics.WithNamespace(cfg.Metrics.Namespace))
		opts = append(opts, vdom.WithObserver(collector))
		inspectOpts = append(inspectOpts, inspect.WithGatherer(reg))
	}

	d, _ := demo.Lookup(cfg.Demo)
	inspectOpts = append(inspectOpts,
		inspect.WithLogger(logger),
		inspect.WithTitle("retain: "+d.Name),
	)

	doc := htmlhost.New()
	root := vdom.NewRoot(doc, doc.Container(), opts...)
	srv := inspect.New(root, doc, inspectOpts...)
	if err := srv.Render(context.Background(), d.Element()); err != nil {
		return nil, err
	}
	return srv, nil
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	srv, err := newInspector(cfg, logger)
	if err != nil {
		return err
	}
	defer srv.Close()

	printBanner()
	fmt.Println("  serve")
	fmt.Println()

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	success("Inspecting %s demo at http://%s", cfg.Demo, cfg.Addr)
	if cfg.Keyed {
		info("Keyed child matching enabled")
	}
	if cfg.Metrics.Disabled {
		warn("Metrics disabled")
	} else {
		info("Metrics at http://%s/metrics", cfg.Addr)
	}

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	fmt.Println("\n\n  Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
