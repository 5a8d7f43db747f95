package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/lanscout/internal/catalog"
	"github.com/MrSnakeDoc/lanscout/internal/config"
	"github.com/MrSnakeDoc/lanscout/internal/domain"
	"github.com/MrSnakeDoc/lanscout/internal/httpserver"
	"github.com/MrSnakeDoc/lanscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lanscout/internal/logger"
	"github.com/MrSnakeDoc/lanscout/internal/metrics"
	"github.com/MrSnakeDoc/lanscout/internal/monitor"
	"github.com/MrSnakeDoc/lanscout/internal/scanner"
	"github.com/MrSnakeDoc/lanscout/internal/scheduler"
	"github.com/MrSnakeDoc/lanscout/internal/sources/servicefile"
	"github.com/MrSnakeDoc/lanscout/internal/version"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	catalog *catalog.Catalog
	metrics *metrics.Metrics
	monitor *monitor.Monitor
	warmer  *scheduler.Warmer
	server  *httpserver.Server
}

// New wires every component from cfg. Nothing is started and no port is
// probed until Run or Status is called.
func New(cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	services, err := servicefile.LoadServices(cfg.ServiceFile, cfg.ProbeHost)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	cat := catalog.New(services)
	source := "built-in"
	if cfg.ServiceFile != "" {
		source = cfg.ServiceFile
	}
	loggerClient.Info("services loaded",
		logger.Int("count", cat.Count()),
		logger.String("source", source),
		logger.Strings("names", cat.Names()))

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(version.Version, version.Commit)
	}

	sc := scanner.New(
		domain.NewTCPProber(cfg.ProbeTimeout),
		cfg.ProbeWorkers,
		m,
		loggerClient.Named("scanner"),
	)
	mon := monitor.New(cat.Services(), sc, monitor.Options{
		CacheDuration: cfg.CacheDuration,
		Metrics:       m,
		Logger:        loggerClient.Named("monitor"),
	})

	var warmer *scheduler.Warmer
	if cfg.WarmInterval > 0 {
		warmer = scheduler.NewWarmer(mon, loggerClient.Named("warmer"), cfg.WarmInterval)
	}

	// Dependencies passed to routes.
	d := deps.Deps{
		Logger:           loggerClient,
		StartTime:        time.Now(),
		Version:          version.Version,
		Commit:           version.Commit,
		BuildDate:        version.BuildDate,
		GoVersion:        version.GoVersion,
		TimeNow:          time.Now,
		Monitor:          mon,
		Catalog:          cat,
		Metrics:          m,
		OfflineThreshold: cfg.OfflineThreshold,
		IconsDir:         cfg.IconsDir,
		AllowedHosts:     cfg.AllowedHosts,
		AllowedCIDRS:     cfg.AllowedCIDRS,
		TrustProxy:       cfg.TrustProxy,
		RefreshBurst:     cfg.RefreshBurst,
		RefreshPerMin:    cfg.RefreshPerMin,
	}

	return &App{
		cfg:     cfg,
		logger:  loggerClient,
		catalog: cat,
		metrics: m,
		monitor: mon,
		warmer:  warmer,
		server:  httpserver.New(cfg, loggerClient, d),
	}, nil
}

// Status runs (or reuses) one scan of every configured service.
func (a *App) Status(ctx context.Context) monitor.Status {
	return a.monitor.GetStatus(ctx)
}

// Services returns the configured services in file order.
func (a *App) Services() []*domain.Service {
	return a.catalog.Services()
}

// Run serves HTTP until SIGINT/SIGTERM, then shuts down gracefully.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext serves HTTP until ctx is done.
func (a *App) RunContext(ctx context.Context) error {
	a.logger.Infof("🚀 Starting LanScout %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("LanScout %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)
	a.logger.Info("monitor configured",
		logger.Duration("probe_timeout", a.cfg.ProbeTimeout),
		logger.Duration("cache_duration", a.cfg.CacheDuration),
		logger.Int("probe_workers", a.cfg.ProbeWorkers),
		logger.Bool("metrics", a.metrics != nil))

	if a.warmer != nil {
		a.warmer.Start(ctx)
		a.logger.Info("status warmer started",
			logger.Duration("interval", a.cfg.WarmInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.stopWarmer()
		return err
	}

	a.stopWarmer()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ LanScout stopped cleanly")
	return nil
}

func (a *App) stopWarmer() {
	if a.warmer != nil {
		a.warmer.Stop()
	}
}
