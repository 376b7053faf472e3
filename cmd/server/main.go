package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	router "github.com/kamaldevyadav822-commits/Best-sync/internal/adapters/http"
	signalws "github.com/kamaldevyadav822-commits/Best-sync/internal/adapters/signal"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/app"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/config"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/search"
	"github.com/kamaldevyadav822-commits/Best-sync/internal/store"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	// Human-friendly output for terminal; in production you may want JSON only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
	}

	rooms := store.NewRoomStore(cfg.RoomTTL, cfg.MaxRoomSize)
	conns := app.NewRegistry()
	presence := app.NewPresence()
	ctl := signalws.NewController(rooms, conns, presence, cfg)

	sweeper := &store.Sweeper{
		Store:    rooms,
		Interval: cfg.SweepInterval,
		OnClose:  ctl.NotifyClosure,
	}
	go sweeper.Run(ctx)
	go ctl.RunHeartbeat(ctx, cfg.HeartbeatInterval)

	httpClient := &http.Client{Timeout: cfg.SearchTimeout}
	yt := search.NewYouTube(cfg.YouTubeAPIKey, httpClient)
	jam := search.NewJamendo(cfg.JamendoClientID, httpClient)

	r := router.SetupRouter(ctx, cfg, ctl, rooms, yt, jam)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Best-sync server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}
