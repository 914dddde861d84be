package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitnessmap/config"
	"fitnessmap/routes"
	"fitnessmap/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := config.NewLogger(cfg.Log)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.OpenDB(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	if err := config.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewMetrics(reg)

	hub := services.NewRealtimeHub(metrics)
	var broker services.Broker = hub
	if cfg.Redis.Enabled() {
		rdb := config.NewRedisClient(cfg.Redis)
		defer rdb.Close()
		if err := config.PingRedis(ctx, rdb); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, realtime events stay on this instance")
		} else {
			rb := services.NewRedisBroker(rdb, hub, log)
			go func() {
				if err := rb.Run(ctx); err != nil {
					log.Error().Err(err).Msg("redis relay stopped")
				}
			}()
			broker = rb
		}
	}

	secret := []byte(cfg.JWTSecret)
	store := services.NewGormProfileStore(db)
	goals := services.NewGoalService(db)
	alerts := services.NewAlertBus(db, broker, log)
	auth := services.NewAuthService(db, secret)

	r := routes.SetupRouter(routes.Deps{
		Auth:      auth,
		Users:     services.NewUserService(db, auth),
		Fitness:   services.NewFitnessService(store, goals, alerts, broker, metrics, log),
		Recs:      services.NewRecService(store),
		Goals:     goals,
		Alerts:    alerts,
		Analytics: services.NewAnalyticsService(store),
		Broker:    broker,
		JWTSecret: secret,
		Gatherer:  reg,
		Log:       log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("serve")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
