package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/config"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/database"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/router"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/storage"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/pkg/logger"
)

func main() {
	// config + logger (.env is optional)
	_ = godotenv.Load()
	cfg := config.Load()
	l := logger.New(cfg.Env)

	// db
	pool, err := database.Open(context.Background(), cfg)
	if err != nil {
		l.Fatal().Err(err).Msg("db connect failed")
	}
	defer pool.Close()

	// image store
	images, err := storage.New(cfg.UploadDir)
	if err != nil {
		l.Fatal().Err(err).Msg("upload dir init failed")
	}

	// http
	r := router.New(l, pool, cfg, images)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Info().Msg("shutdown complete")
}
