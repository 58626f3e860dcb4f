package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fxconvert/internal/adapters/cache"
	"fxconvert/internal/adapters/httpclient"
	"fxconvert/internal/adapters/postgres"
	"fxconvert/internal/api"
	"fxconvert/internal/config"
	"fxconvert/internal/convert/handler"
	"fxconvert/internal/domain"
	"fxconvert/internal/export"
	"fxconvert/internal/platform/db"
	httpserver "fxconvert/internal/platform/http"
	"fxconvert/internal/rate"

	"github.com/sirupsen/logrus"
)

// Run wires the application components and starts the HTTP server.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Supported currency set is fixed configuration
	currencies, err := domain.NewCurrencySet(appCfg.Currencies.CodesList(), appCfg.Currencies.Base)
	if err != nil {
		logrus.WithError(err).Error("Invalid supported currency configuration")
		return err
	}
	display := appCfg.Currencies.Display
	if display == "" {
		display = currencies.Base()
	}
	if !currencies.Contains(display) {
		return fmt.Errorf("display currency %q is not among supported codes", display)
	}
	logrus.Info("✅ Supported currencies loaded")

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External rate provider
	if appCfg.RatesAPI.AccessKey == "" {
		return fmt.Errorf("rates api access key is required")
	}
	rateClient := httpclient.NewCurrencyLayerClient(baseHTTPClient, appCfg.RatesAPI.Endpoint, appCfg.RatesAPI.AccessKey)

	// Store, snapshot cache and core services
	rateStore := postgres.NewRateStore(pool)
	snapshotCache, err := cache.NewSnapshotCache()
	if err != nil {
		logrus.WithError(err).Error("Failed to create snapshot cache")
		return err
	}
	defer snapshotCache.Close()

	rateCache := rate.NewCache(rateStore, rateClient, snapshotCache, currencies)
	converter := rate.NewConverter(rateCache, currencies)
	validator := rate.NewValidator(currencies, export.Formats())

	// Handlers and router
	convertHandler := handler.NewConvertHandler(validator, converter, display)
	router := api.NewRouter(convertHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
