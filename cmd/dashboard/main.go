package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transaction-analyzer/internal/config"
	"transaction-analyzer/internal/database"
	"transaction-analyzer/internal/handlers"
	"transaction-analyzer/internal/middleware"
	"transaction-analyzer/internal/repositories"
	"transaction-analyzer/internal/services"
	"transaction-analyzer/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 5 * time.Second

func main() {
	headless := flag.Bool("headless", false, "serve only the HTTP control API, without the terminal dashboard")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg.Logging, !*headless)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, *headless); err != nil {
		logger.Error("dashboard stopped with error", slog.String("error", err.Error()))
		closeLog()
		os.Exit(1)
	}
}

// newLogger builds the process logger. The terminal dashboard owns stdout,
// so in that mode logs go to the configured file instead.
func newLogger(cfg config.LoggingConfig, toFile bool) (*slog.Logger, func(), error) {
	var out io.Writer = os.Stdout
	closeFn := func() {}

	if toFile {
		if cfg.File == "" {
			out = io.Discard
		} else {
			f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, nil, err
			}
			out = f
			closeFn = func() { _ = f.Close() }
		}
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}
	return slog.New(handler), closeFn, nil
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, headless bool) error {
	if headless && !cfg.Server.Enabled {
		return errors.New("headless mode needs the control server; set CONTROL_SERVER_ENABLED=true")
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize journal database: %w", err)
	}
	defer db.Close()

	journal := services.NewActionJournal(repositories.NewActionLogRepository(db.DB))
	if pruned, err := journal.Prune(ctx, cfg.Database.JournalRetention); err != nil {
		logger.Warn("failed to prune action journal", slog.String("error", err.Error()))
	} else if pruned > 0 {
		logger.Info("pruned action journal", slog.Int64("deleted", pruned))
	}

	actionLogger := services.NewActionLogger(logger)
	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)

	var breaker services.CircuitBreakerInterface
	if cfg.Backend.BreakerEnabled() {
		breaker = services.NewCircuitBreaker(services.CircuitBreakerConfig{
			Threshold:      cfg.Backend.BreakerMaxFailures,
			Cooldown:       cfg.Backend.BreakerResetTimeout,
			TrialSuccesses: cfg.Backend.BreakerHalfOpenSucc,
		})
	}

	gateway := services.NewResourceGateway(&cfg.Backend, breaker, metrics, actionLogger)
	controller := services.NewDashboardController(
		gateway,
		services.NewDataLoader(gateway, actionLogger, metrics),
		services.NewPendingSet(),
		services.NewBusyFlags(),
		services.NewNotificationCenter(cfg.Notification.DismissAfter),
		journal,
		metrics,
		actionLogger,
	)
	defer controller.Close()

	logger.Info("dashboard starting",
		slog.String("backend_url", cfg.Backend.BaseURL),
		slog.Bool("headless", headless),
		slog.Bool("control_server", cfg.Server.Enabled),
	)

	serverErr := make(chan error, 1)
	if cfg.Server.Enabled {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerSecond)
		go limiter.Run(ctx)

		dashboard := handlers.NewDashboardHandler(controller, cfg.Server.MaxUploadBytes)
		router := handlers.NewRouter(handlers.RouterDeps{
			Dashboard:   dashboard,
			Actions:     handlers.NewActionHandler(journal),
			Health:      handlers.NewHealthCheckHandler(db.DB, breaker),
			RateLimiter: limiter,
			Gatherer:    prometheus.DefaultGatherer,
			Logger:      logger,
		})

		server := &http.Server{
			Addr:         cfg.Server.Address,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}
		go func() {
			logger.Info("control server listening", slog.String("addr", cfg.Server.Address))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Warn("control server shutdown failed", slog.String("error", err.Error()))
			}
		}()
	}

	if headless {
		// The terminal dashboard mounts on Init; headless mode mounts here.
		go func() { _ = controller.Mount(ctx) }()
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case err := <-serverErr:
			return fmt.Errorf("control server failed: %w", err)
		}
	}

	program := tea.NewProgram(tui.NewModel(ctx, controller), tea.WithAltScreen(), tea.WithContext(ctx))
	go func() {
		if err := <-serverErr; err != nil {
			logger.Error("control server failed", slog.String("error", err.Error()))
			program.Quit()
		}
	}()

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal dashboard failed: %w", err)
	}
	logger.Info("shutting down")
	return nil
}
