package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"aurorafeeder/apis"
	"aurorafeeder/chains"
	"aurorafeeder/config"
	"aurorafeeder/feeder"
	"aurorafeeder/scheduler"
)

func main() {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	pairs, err := feeder.ParsePairs(cfg.PairList())
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid pair list")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher := apis.NewCoinMarketCap(*cfg, logger)
	resolver := feeder.NewResolver(fetcher, logger)

	dispatcher, err := chains.NewDispatcher(ctx, cfg.PrivateKey, cfg.Oracles, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up oracle targets")
	}

	updater := feeder.NewUpdater(pairs, resolver, dispatcher, logger)

	sched := scheduler.New(
		cfg.Schedule,
		func(ctx context.Context) error { return resolver.HealthCheck(ctx, pairs) },
		func(ctx context.Context) { updater.UpdatePrices(ctx) },
		logger,
	)

	if err := sched.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msg("scheduler did not start")
	}

	<-ctx.Done()
	sched.Stop()
	logger.Info().Msg("shutting down")
}
