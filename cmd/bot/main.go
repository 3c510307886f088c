package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"birthday-botique/internal/application"
	"birthday-botique/internal/config"
	"birthday-botique/internal/domain/ports/adapter"
	tele "birthday-botique/internal/infra/adapters/telegram"
	pg "birthday-botique/internal/infra/db/postgres"
	httpapi "birthday-botique/internal/infra/http"
	"birthday-botique/internal/infra/logging"
	"birthday-botique/internal/infra/metrics"
	red "birthday-botique/internal/infra/redis"
	"birthday-botique/internal/infra/sched"
	"birthday-botique/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		// No logger yet.
		panic(err)
	}

	logger := logging.New(cfg.Log)
	metrics.MustRegister()

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 10)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres")
	}
	defer pool.Close()

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis")
	}
	defer redisClient.Close()
	rateLimiter := red.NewRateLimiter(redisClient)

	// ---- Repositories ----
	userRepo := pg.NewPostgresUserRepo(pool)
	logRepo := pg.NewActivityLogRepo(pool)
	txManager := pg.NewTxManager(pool)

	// ---- Use cases and facade ----
	ucLog := logging.Component(logger, "usecase")
	registrationUC := usecase.NewRegistrationUseCase(userRepo, logRepo, txManager, ucLog)

	facadeLog := logging.Component(logger, "facade")
	facade := application.NewBotFacade(registrationUC, cfg.Bot.AdminChatID, facadeLog)

	// ---- Telegram ----
	var messenger adapter.Messenger
	var botAdapter *tele.RealBotAdapter
	if strings.EqualFold(cfg.Bot.Mode, "dry-run") {
		logger.Warn().Msg("dry-run mode: outbound messages are logged, not sent")
		messenger = tele.NewNoopBot(logging.Component(logger, "noop-bot"))
	} else {
		botAdapter, err = tele.NewRealBotAdapter(&cfg.Bot, facade, rateLimiter, logging.Component(logger, "telegram"))
		if err != nil {
			logger.Fatal().Err(err).Msg("telegram")
		}
		messenger = botAdapter
		go func() {
			if err := botAdapter.StartPolling(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error().Err(err).Msg("telegram polling stopped")
			}
		}()
	}

	// ---- Daily broadcast ----
	broadcastUC := usecase.NewBroadcastUseCase(userRepo, logRepo, messenger, ucLog)
	worker, err := sched.NewBroadcastWorker(broadcastUC, cfg.Broadcast.Time, cfg.Broadcast.Timezone, logging.Component(logger, "sched"))
	if err != nil {
		logger.Fatal().Err(err).Msg("broadcast worker")
	}
	go func() {
		if err := worker.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("broadcast worker stopped")
		}
	}()

	// ---- Ops server ----
	srv := httpapi.NewServer(cfg.Admin.Port, pool, redisClient, logging.Component(logger, "http"))
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("ops server failed")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()
	if botAdapter != nil {
		botAdapter.StopPolling()
	}
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error().Err(err).Msg("ops server shutdown")
	}
}
