package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/robfig/cron/v3"

	"nayak-niti/internal/adapters/web"
	"nayak-niti/internal/bootstrap"
	"nayak-niti/internal/config"
	"nayak-niti/pkg/log"
)

func main() {
	if err := run(); err != nil {
		log.GlobalError("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return err
	}

	level, _ := log.ParseLevel(cfg.Log.Level)
	log.SetDefault(log.New(level, os.Stdout).With("service", "nayak-niti"))
	for _, w := range cfg.Warnings {
		log.GlobalWarn("config", "warning", w)
	}

	svc, err := bootstrap.New(cfg, bootstrap.Options{})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Policies.PrefetchCron != "" {
		scheduler := cron.New()
		_, err := scheduler.AddFunc(cfg.Policies.PrefetchCron, func() {
			svc.ListPolicies.Prefetch(ctx)
		})
		if err != nil {
			log.GlobalWarn("invalid prefetch schedule, prefetch disabled", "cron", cfg.Policies.PrefetchCron, "error", err)
		} else {
			scheduler.Start()
			defer scheduler.Stop()
			log.GlobalInfo("policy prefetch scheduled", "cron", cfg.Policies.PrefetchCron)
		}
	}

	rateLimiter := web.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	go rateLimiter.Run(ctx, 5*time.Minute)

	handlers := web.NewHandlers(svc.CheckArticle, svc.ListPolicies, svc.Chat, svc.PoliticianNews, cfg.Chat.Timeout)

	app := fiber.New(fiber.Config{
		AppName:      "Nayak Niti",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	// Middleware order matters: requestid, then the log bridge, then the logger.
	app.Use(recover.New())
	app.Use(requestid.New(web.RequestIDConfig()))
	app.Use(web.RequestIDToContextMiddleware())
	app.Use(web.RequestLoggerMiddleware())

	web.SetupRoutes(app, handlers, rateLimiter)

	go func() {
		<-ctx.Done()
		log.GlobalInfo("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.GlobalError("shutdown failed", "error", err)
		}
	}()

	log.GlobalInfo("starting server", "port", cfg.Server.Port, "feeds", len(bootstrap.FeedSources(cfg.Policies.Feeds)))
	return app.Listen(":" + cfg.Server.Port)
}
