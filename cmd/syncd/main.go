package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	syncapp "github.com/ordersync/backend/internal/application/sync"
	ordersync "github.com/ordersync/backend/internal/domain/sync"
	"github.com/ordersync/backend/internal/infrastructure/config"
	"github.com/ordersync/backend/internal/infrastructure/hostapi"
	"github.com/ordersync/backend/internal/infrastructure/legacy"
	"github.com/ordersync/backend/internal/infrastructure/logger"
	"github.com/ordersync/backend/internal/infrastructure/persistence"
)

const dateLayout = "2006-01-02"

func main() {
	var (
		shop       = flag.String("shop", "", "shop to sync (required)")
		statusCode = flag.Int("status", -1, "restrict to a legacy order status code")
		from       = flag.String("from", "", "start date, YYYY-MM-DD")
		to         = flag.String("to", "", "end date, YYYY-MM-DD")
		checkOnly  = flag.Bool("check", false, "test the shop's legacy endpoint and exit")
	)
	flag.Parse()

	if *shop == "" {
		fmt.Fprintln(os.Stderr, "usage: syncd -shop <name> [-status N] [-from YYYY-MM-DD] [-to YYYY-MM-DD] [-check]")
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting order sync",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("shop", *shop),
	)

	// Initialize database connection
	db, err := newDatabase(&cfg.Database, cfg.Log.Level)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to migrate schema", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Initialize repositories and clients
	ledgerRepo := persistence.NewGormSyncLedgerRepository(db.DB)
	connectionRepo := persistence.NewGormShopConnectionRepository(db.DB)
	clientPool := legacy.NewClientPool(logger.Named(log, "legacy"))
	platform, err := hostapi.NewClient(&hostapi.Config{
		BaseURL:        cfg.HostAPI.BaseURL,
		AccessToken:    cfg.HostAPI.AccessToken,
		TimeoutSeconds: cfg.HostAPI.TimeoutSeconds,
	}, logger.Named(log, "hostapi"))
	if err != nil {
		log.Fatal("Failed to create host platform client", zap.Error(err))
	}

	service := syncapp.NewTransferService(connectionRepo, ledgerRepo, clientPool, platform, logger.Named(log, "sync"))

	// Cancel on SIGINT/SIGTERM; ledger rows already written stay intact
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *checkOnly {
		if err := db.Ping(); err != nil {
			log.Fatal("Database unreachable", zap.Error(err))
		}
		if err := service.TestConnection(ctx, *shop); err != nil {
			log.Fatal("Connection test failed", zap.Error(err))
		}
		log.Info("Connection test succeeded", zap.String("shop", *shop))
		return
	}

	filter, err := buildFilter(*statusCode, *from, *to)
	if err != nil {
		log.Fatal("Invalid filter", zap.Error(err))
	}

	report, err := service.SyncShop(ctx, *shop, filter)
	if err != nil {
		log.Fatal("Sync failed", zap.Error(err))
	}

	for _, o := range report.Orders {
		if o.Outcome == syncapp.OutcomeFailed {
			log.Warn("Order not imported",
				zap.String("order_number", o.OrderNumber),
				zap.String("reason", o.Reason))
		}
	}
	log.Info("Sync finished",
		zap.Int("total", report.Total),
		zap.Int("synced", report.Synced),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("failed", report.Failed),
	)
	if report.Failed > 0 {
		os.Exit(1)
	}
}

// newDatabase connects with SQL statement logging when the application log
// level asks for debug output
func newDatabase(cfg *config.DatabaseConfig, logLevel string) (*persistence.Database, error) {
	if logLevel == "debug" {
		return persistence.NewDatabaseWithLogger(cfg, gormlogger.Info)
	}
	return persistence.NewDatabase(cfg)
}

// buildFilter converts CLI flags into a domain order filter
func buildFilter(statusCode int, from, to string) (ordersync.OrderFilter, error) {
	var filter ordersync.OrderFilter
	if statusCode >= 0 {
		status := ordersync.OrderStatusFromCode(statusCode)
		if !status.IsValid() {
			return filter, fmt.Errorf("unknown order status code %d", statusCode)
		}
		filter.Status = &status
	}
	if from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return filter, fmt.Errorf("invalid -from date: %w", err)
		}
		filter.StartDate = &t
	}
	if to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return filter, fmt.Errorf("invalid -to date: %w", err)
		}
		filter.EndDate = &t
	}
	return filter, nil
}
