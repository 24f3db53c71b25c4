package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/swtraders/admin/internal/catalogd"
	"github.com/swtraders/admin/internal/config"
	"github.com/swtraders/admin/internal/httpx"
	"github.com/swtraders/admin/internal/kafkax"
	"github.com/swtraders/admin/internal/logx"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadCatalogd()
	if err != nil {
		panic(err)
	}
	log := logx.New(cfg.Environment, cfg.ServiceName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store catalogd.Store
	switch cfg.StorageDriver {
	case "memory":
		store = catalogd.NewMemStore()
		log.Warn().Msg("using in-memory storage, data is lost on exit")
	default:
		db, err := catalogd.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("db connect")
		}
		defer db.Close()
		repo := &catalogd.Repo{DB: db}
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("ensure schema")
		}
		store = repo
	}

	cache := catalogd.NewOrderCache(cfg.RedisAddr)
	defer cache.Close()

	var prod *kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, 1024, log)
		prod.Start(ctx)
	}

	router := httpx.NewRouter()
	h := &catalogd.Handler{
		Store:    store,
		Cache:    cache,
		Producer: prod,
		Service:  cfg.ServiceName,
		Log:      log,
	}
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("storage", cfg.StorageDriver).Msg("catalog api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)

	if prod != nil {
		prod.Close()
		prod.WaitClosed()
	}
}
