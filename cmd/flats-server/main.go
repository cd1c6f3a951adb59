// Command flats-server starts the flat-rental back-office HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Yurisurdi/flats/internal/backup"
	"github.com/Yurisurdi/flats/internal/config"
	"github.com/Yurisurdi/flats/internal/exchange"
	"github.com/Yurisurdi/flats/internal/migrate"
	"github.com/Yurisurdi/flats/internal/repository/sqlite"
	httpserver "github.com/Yurisurdi/flats/internal/server/http"
	"github.com/Yurisurdi/flats/internal/service"
	"github.com/Yurisurdi/flats/migrations"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main parses configuration, runs migrations, and starts the HTTP server.
func main() {
	// Flags
	configPath := flag.String("config", "config.toml", "path to TOML config")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	// .env is optional; real env vars take precedence either way.
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
	)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recordsDB, err := sqlite.Open(cfg.Database.RecordsPath)
	if err != nil {
		logger.Fatal("open records db", zap.Error(err))
	}
	defer recordsDB.Close()

	mediaDB, err := sqlite.Open(cfg.Database.MediaPath)
	if err != nil {
		logger.Fatal("open media db", zap.Error(err))
	}
	defer mediaDB.Close()

	if err := migrate.Up(ctx, recordsDB.DB, migrations.RecordsDir); err != nil {
		logger.Fatal("migrate records db", zap.Error(err))
	}
	if err := migrate.Up(ctx, mediaDB.DB, migrations.MediaDir); err != nil {
		logger.Fatal("migrate media db", zap.Error(err))
	}

	// Repositories
	records := sqlite.NewRecordStore(recordsDB)
	media := sqlite.NewMediaStore(mediaDB)

	// Services
	rates := exchange.New(cfg.Exchange.URL, cfg.Exchange.FallbackRate, cfg.Exchange.CacheTTL, nil, logger)
	authSvc := service.NewAuthService(cfg.Auth.Users, []byte(cfg.Auth.JWTSecret), cfg.Auth.AccessTTL)
	clientSvc := service.NewClientService(records)
	agentSvc := service.NewAgentService(records)
	apartmentSvc := service.NewApartmentService(records, media)
	bookingSvc := service.NewBookingService(records, records)
	settingsSvc := service.NewSettingsService(records)
	reportSvc := service.NewReportService(records, records, records, records, rates)
	backupSvc := backup.NewService(records)

	app := httpserver.New(authSvc, clientSvc, agentSvc, apartmentSvc, bookingSvc, settingsSvc, reportSvc, backupSvc, logger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
		logger.Info("stopped")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}
}
