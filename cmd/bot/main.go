// File: cmd/bot/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bunny00908/anime/internal/application"
	"github.com/bunny00908/anime/internal/config"
	"github.com/bunny00908/anime/internal/domain/ports/repository"
	"github.com/bunny00908/anime/internal/infra/adapters/pexels"
	tele "github.com/bunny00908/anime/internal/infra/adapters/telegram"
	"github.com/bunny00908/anime/internal/infra/logging"
	"github.com/bunny00908/anime/internal/infra/memory"
	"github.com/bunny00908/anime/internal/infra/metrics"
	red "github.com/bunny00908/anime/internal/infra/redis"
	"github.com/bunny00908/anime/internal/infra/web"
	"github.com/bunny00908/anime/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logging)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("[DEV MODE] Enabled")
	}
	metrics.MustRegister()

	// ---- User directory ----
	var directory repository.UserDirectory
	switch cfg.Directory.Backend {
	case "redis":
		redisClient, err := red.NewClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis")
		}
		defer redisClient.Close()
		directory = red.NewDirectory(redisClient)
		logger.Info().Str("backend", "redis").Msg("user directory ready")
	default:
		directory = memory.NewDirectory()
		logger.Info().Str("backend", "memory").Msg("user directory ready")
	}

	// ---- Pexels ----
	search, err := pexels.NewClient(&cfg.Pexels, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("pexels client")
	}

	// ---- Use cases ----
	userUC := usecase.NewUserUseCase(directory, logger)
	imageUC := usecase.NewImageUseCase(search, nil, logger)

	// ---- Telegram ----
	botAdapter, err := tele.NewRealTelegramBotAdapter(&cfg.Bot, cfg.Bot.Workers, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("telegram")
	}

	// ---- Facade ----
	facade := application.NewBotFacade(
		userUC,
		imageUC,
		botAdapter,
		application.ChannelLink{Handle: cfg.Channels.Main.Handle, Name: cfg.Channels.Main.Name},
		application.ChannelLink{Handle: cfg.Channels.Backup.Handle, Name: cfg.Channels.Backup.Name},
		logger,
	)

	go func() {
		if err := botAdapter.StartPolling(ctx, facade); err != nil {
			logger.Error().Err(err).Msg("telegram polling stopped")
		}
	}()
	logger.Info().
		Str("main_channel", cfg.Channels.Main.Handle).
		Str("backup_channel", cfg.Channels.Backup.Handle).
		Msg("anime channel bot is running")

	// ---- Admin HTTP server ----
	adminSrv := web.NewServer(userUC, cfg.Admin.APIKey, logger)
	server := &http.Server{Addr: fmt.Sprintf(":%d", cfg.Admin.Port), Handler: adminSrv.Router()}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("admin http listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("admin http server error")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()
	_ = server.Shutdown(context.Background())
}
