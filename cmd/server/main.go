package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "formcraft/docs"
	"formcraft/internal/app"
	"formcraft/internal/config"
	"formcraft/internal/logging"
	"formcraft/internal/transport/rest"
	"formcraft/internal/transport/ws"
)

// @title			formcraft API
// @version		1.0
// @description	Form builder: compose categorize, cloze and comprehension forms, upload images, collect responses.
// @host			localhost:5000
// @BasePath		/
func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogFormat, cfg.Environment)
	ctx := context.Background()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer a.Close(context.Background())

	wsHub := ws.NewHub(log)
	defer wsHub.Close()
	a.ResponseService.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		FormService:     a.FormService,
		ResponseService: a.ResponseService,
		UploadService:   a.UploadService,
		WSHub:           wsHub,
		MaxUploadBytes:  cfg.MaxUploadBytes(),
		CORSOrigins:     cfg.CORSOrigins,
		Logger:          log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
	}
	log.Info("server exited")
}
