package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"fintrack/internal/amqp"
	"fintrack/internal/backend"
	"fintrack/internal/cli"
	apphttp "fintrack/internal/http"
	"fintrack/internal/ledger"
	"fintrack/internal/seed"
	"fintrack/internal/session"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	stores, err := backend.New(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if stores.Cleanup != nil {
		defer func() {
			if err := stores.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", "error", err)
			}
		}()
	}

	led := ledger.New(stores.Transactions, ledger.WithSeed(seed.Transactions))
	if err := led.Load(context.Background()); err != nil {
		logger.Error("Failed to load ledger", "error", err)
		os.Exit(1)
	}

	sess := session.New(stores.Users)
	if err := sess.Load(context.Background()); err != nil {
		logger.Error("Failed to load session", "error", err)
		os.Exit(1)
	}

	// Publish mutation events when AMQP is configured. Publishing is best
	// effort; a broker outage never fails the user request.
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			defer amqpClient.Close()
			led.Subscribe(func(ev ledger.Event) {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := amqpClient.PublishTransactionEvent(ctx, string(ev.Op), ev.Transaction.ID, ev.Version); err != nil {
					logger.Error("Failed to publish transaction event",
						"error", err,
						"op", string(ev.Op),
						"id", ev.Transaction.ID)
				}
			})
			logger.Info("Initialized AMQP event publishing",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	srv := apphttp.NewServer(apphttp.Config{
		Addr:               ":" + cfg.Port,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	}, led, sess)
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	})

	logger.Info("Starting fintrack server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
}
