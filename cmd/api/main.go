package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/scenario-planner/internal/config"
	"github.com/Dan9191/scenario-planner/internal/handler"
	"github.com/Dan9191/scenario-planner/internal/integrations/gemini"
	"github.com/Dan9191/scenario-planner/internal/middleware"
	"github.com/Dan9191/scenario-planner/internal/service"
	"github.com/Dan9191/scenario-planner/internal/stats"
	"github.com/Dan9191/scenario-planner/internal/summary"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type serveOptions struct {
	port    string
	envFile string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &serveOptions{}
	root := &cobra.Command{
		Use:          "scenario-planner",
		Short:        "Financial scenario projection API with AI summaries",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), opts)
		},
	}
	root.Flags().StringVar(&opts.port, "port", "", "listen port (overrides PORT)")
	root.Flags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(newComputeCmd())
	return root
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

func serve(ctx context.Context, opts *serveOptions) error {
	// Initialize logger
	logger := newLogger(os.Getenv("LOG_LEVEL"))

	// Load configuration
	cfg, err := config.NewConfig(opts.envFile)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if opts.port != "" {
		cfg.Port = opts.port
	}
	logger = newLogger(cfg.LogLevel)

	templates, err := loadTemplates(cfg.PromptTemplates)
	if err != nil {
		logger.Fatalf("Failed to load prompt templates: %v", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize layers
	gem, err := gemini.NewClient(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to create Gemini client: %v", err)
	}
	counters := stats.NewCounters()
	sum := summary.NewSummarizer(gem, templates, cfg.SummaryTimeout, logger)
	svc := service.NewService(sum, counters, logger)
	h := handler.NewHandler(svc, logger)

	if cfg.StatsSchedule != "" {
		reporter, err := stats.NewReporter(cfg.StatsSchedule, counters, logger)
		if err != nil {
			logger.Fatalf("Failed to schedule usage reports: %v", err)
		}
		reporter.Start()
		defer reporter.Stop()
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           newRouter(h, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// leaves room for the summary call
		WriteTimeout: cfg.SummaryTimeout + 10*time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.WithFields(logrus.Fields{
			"addr":              addr,
			"model":             gem.Model(),
			"templates_version": templates.Version,
		}).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("Server stopped with error: %v", err)
		return err
	}
	logger.Info("Server stopped")
	return nil
}

// newRouter mounts the scenario routes behind logging, recovery and CORS
func newRouter(h *handler.Handler, logger *logrus.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Logging(logger), middleware.Recovery(logger))
	h.Register(r)
	return middleware.CORS(r, logger)
}

func loadTemplates(path string) (*summary.Templates, error) {
	if path == "" {
		return summary.DefaultTemplates(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return summary.LoadTemplates(f)
}
