package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockExpert/internal/cache"
	"StockExpert/internal/config"
	"StockExpert/internal/engine"
	"StockExpert/internal/fetcher"
	"StockExpert/internal/forecast"
	"StockExpert/internal/notifier"
	"StockExpert/internal/recorder"
	"StockExpert/internal/scheduler"
	"StockExpert/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockExpert starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var f fetcher.Fetcher = fetcher.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", f.Name())

	// Init forecaster (optional)
	var fc forecast.Forecaster
	if cfg.Forecast.BaseURL != "" {
		fc = forecast.NewRESTForecaster(cfg.Forecast.BaseURL, cfg.Forecast.APIKey, cfg.Proxy)
		log.Printf("[INFO] forecast service: %s", cfg.Forecast.BaseURL)
	} else {
		log.Println("[INFO] no forecast service configured")
	}

	// Init cache and engine
	ttl, _ := cfg.CacheTTL()
	delay, _ := cfg.FetchDelay()
	tickers := make([]engine.Ticker, len(cfg.Tickers))
	for i, t := range cfg.Tickers {
		tickers[i] = engine.Ticker{Symbol: t.Symbol, Rule: t.Rule()}
	}
	eng := engine.New(f, fc, cache.New(ttl), tickers, engine.Options{
		Lookback:   cfg.DataSource.Lookback,
		Interval:   cfg.DataSource.Interval,
		Horizon:    cfg.Forecast.Horizon,
		Freq:       24 * time.Hour,
		FetchDelay: delay,
	})

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init Telegram notifier (optional)
	var tn notifier.Notifier = notifier.NoopNotifier{}
	var telegram *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		telegram = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		tn = telegram
	} else {
		log.Println("[INFO] Telegram not configured, alerts disabled")
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	store := server.NewReportStore()
	sched := scheduler.NewScheduler(ctx, eng, store, tn, rec)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	if telegram != nil {
		go telegram.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Start HTTP API
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.New(store, eng).Router(),
	}
	go func() {
		log.Printf("[INFO] HTTP API listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	// Run immediately so the API has data before the first cron fire.
	if os.Getenv("RUN_ON_START") != "false" {
		go sched.RunNow()
	}

	log.Println("[INFO] StockExpert is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] http shutdown: %v", err)
	}
	log.Println("[INFO] StockExpert stopped")
}
