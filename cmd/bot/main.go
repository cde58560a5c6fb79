package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/pscheid92/chatparrot/internal/bot"
	"github.com/pscheid92/chatparrot/internal/config"
	"github.com/pscheid92/chatparrot/internal/irc"
	"github.com/pscheid92/chatparrot/internal/metrics"
	"github.com/pscheid92/chatparrot/internal/platform/logging"
	"github.com/pscheid92/chatparrot/internal/platform/version"
	"github.com/pscheid92/chatparrot/internal/server"
	"github.com/pscheid92/chatparrot/internal/trend"
)

const shutdownTimeout = 10 * time.Second

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// newRand seeds the generator behind interval draws and boosts. Seed 0 means
// fresh entropy per run; any other value reproduces a run exactly.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	info := version.Get()
	slog.Info("Bot starting", "env", cfg.AppEnv, "version", info.Version, "channels", cfg.Channels())
	metrics.BuildInfo.WithLabelValues(info.Version, info.Commit, info.BuildTime, info.GoVersion).Set(1)

	store := trend.NewStore()
	dest := &bot.Destination{}

	listener := bot.NewListener(cfg.Nick, cfg.WordRegex(), store, dest)
	client := irc.NewClient(cfg.IRCURL, cfg.Nick, cfg.Token, cfg.Channels(), listener.OnMessage, clock)
	cycle := bot.NewCycle(cfg, store, dest, client, clock, newRand(cfg.RandomSeed))

	checks := []server.HealthCheck{
		{Name: "irc", Check: func(context.Context) error {
			if !client.Connected() {
				return errors.New("chat session is down")
			}
			return nil
		}},
	}
	srv := server.NewServer(cfg, store, checks)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return client.Run(ctx) })
	g.Go(func() error { return cycle.Run(ctx) })
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Bot terminated", "error", err)
		os.Exit(1)
	}

	slog.Info("Bot stopped")
}
