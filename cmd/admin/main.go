package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/swtraders/admin/internal/catalog"
	"github.com/swtraders/admin/internal/config"
	"github.com/swtraders/admin/internal/httpx"
	"github.com/swtraders/admin/internal/logx"
	"github.com/swtraders/admin/internal/ui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadAdmin()
	if err != nil {
		panic(err)
	}
	log := logx.New(cfg.Environment, "admin")

	client := catalog.NewClient(cfg.CatalogAPIURL)
	shell := ui.NewShell(
		ui.NewProductView(client, log),
		ui.NewOrderView(client, log),
	)

	router := httpx.NewRouter()
	httpx.RegisterStatic(router)
	dash := &httpx.Dashboard{Shell: shell, Log: log}
	dash.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("api", cfg.CatalogAPIURL).Msg("dashboard listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
