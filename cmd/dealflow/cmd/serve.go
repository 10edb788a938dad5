package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/mpoirier/dealflow/internal/api/handlers"
	"github.com/mpoirier/dealflow/internal/api/middleware"
	"github.com/mpoirier/dealflow/internal/config"
	"github.com/mpoirier/dealflow/internal/engine"
	"github.com/mpoirier/dealflow/internal/notify"
	"github.com/mpoirier/dealflow/internal/store"
	"github.com/mpoirier/dealflow/internal/telemetry"
	"github.com/mpoirier/dealflow/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	notifier := buildNotifier(cfg, log)

	eng := engine.NewEngine(st, notifier,
		engine.WithLogger(log),
		engine.WithTimers(cfg.Timers.Timers()),
		engine.WithAlertThreshold(cfg.Matching.AlertThreshold),
		engine.WithMatchLimit(cfg.Matching.RefreshLimit),
		engine.WithAlertCooldown(cfg.Matching.AlertCooldown),
	)

	sched, err := engine.NewScheduler(
		eng,
		st,
		cfg.Schedule.ExpirySweepInterval,
		cfg.Schedule.MatchRefreshInterval,
		log,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	healthH := handlers.NewHealthHandler(st)
	e.GET("/healthz", healthH.Healthz)
	e.GET("/readyz", healthH.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Dealflow API", Version))

	handlers.RegisterDealRoutes(api, handlers.NewDealsHandler(st, eng))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(st))
	handlers.RegisterBuyerRoutes(api, handlers.NewBuyersHandler(st))
	handlers.RegisterMatchRoutes(api, handlers.NewMatchesHandler(eng))
	handlers.RegisterAlertRoutes(api, handlers.NewAlertsHandler(st))
	handlers.RegisterTriggerRoutes(api, handlers.NewSweepHandler(eng), handlers.NewRefreshHandler(eng))
	handlers.RegisterSystemStateRoutes(api, handlers.NewSystemStateHandler(st))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))

	sched.Start()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	// Let in-flight scheduled jobs finish before closing the store.
	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("scheduler jobs did not finish before shutdown deadline")
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.Warn("telemetry shutdown", "err", err)
	}

	log.Info("server stopped")
	return nil
}

func buildNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if !cfg.Notifications.Discord.Enabled {
		return notify.NewNoOpNotifier(log)
	}

	rl := notify.NewRateLimiter(
		cfg.Notifications.RateLimit.PerSecond,
		cfg.Notifications.RateLimit.Burst,
		cfg.Notifications.RateLimit.DailyLimit,
	)
	return notify.NewDiscordNotifier(
		cfg.Notifications.Discord.WebhookURL,
		notify.WithRateLimiter(rl),
	)
}
