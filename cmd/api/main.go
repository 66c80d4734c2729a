package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/events"
	"github.com/BruksfildServices01/salon-scheduler/internal/i18n"
	"github.com/BruksfildServices01/salon-scheduler/internal/logging"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/routes"
	"github.com/BruksfildServices01/salon-scheduler/internal/telemetry"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

const serviceName = "salon-api"

func main() {
	cfg := config.Load()
	log := logging.New(serviceName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	i18n.SetDefault(cfg.DefaultLanguage)
	timezone.SetDefault(cfg.DefaultTimezone)
	if err := validators.RegisterBindings(); err != nil {
		log.Error("register validators", "err", err)
		os.Exit(1)
	}

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg)
	if err != nil {
		log.Error("tracing setup failed", "err", err)
		os.Exit(1)
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Error("database", "err", err)
		os.Exit(1)
	}

	// --------------------------------------------------
	// Optional Redis (cache + rate limit)
	// --------------------------------------------------
	var (
		appCache cache.Cache = cache.Noop{}
		limiter  middleware.Counter
	)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, continuing without cache", "addr", cfg.RedisAddr, "err", err)
		} else {
			appCache = cache.NewRedis(rdb, time.Duration(cfg.CacheTTLSeconds)*time.Second)
			limiter = middleware.NewRedisCounter(rdb)
		}
	}

	// --------------------------------------------------
	// Optional AMQP events
	// --------------------------------------------------
	var publisher events.Publisher = events.Noop{}
	if cfg.AMQPUrl != "" {
		p, err := events.DialAMQP(cfg.AMQPUrl, cfg.AMQPExchange)
		if err != nil {
			log.Warn("amqp unreachable, events disabled", "err", err)
		} else {
			defer p.Close()
			publisher = p
		}
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Config:    cfg,
		Log:       log,
		Cache:     appCache,
		Publisher: publisher,
		Audit:     auditDispatcher,
		AuditLog:  auditLogger,
		Limiter:   limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(r, serviceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "err", err)
	}
	auditDispatcher.Close()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracing shutdown", "err", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
