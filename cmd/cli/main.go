package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/edublog/internal/buildinfo"
	"github.com/dmitrijs2005/edublog/internal/cli"
	"github.com/dmitrijs2005/edublog/internal/config"
	"github.com/dmitrijs2005/edublog/internal/latency"
	"github.com/dmitrijs2005/edublog/internal/logging"
	"github.com/dmitrijs2005/edublog/internal/repositories/repomanager"
	"github.com/dmitrijs2005/edublog/internal/seed"
	"github.com/dmitrijs2005/edublog/internal/services"
	"github.com/dmitrijs2005/edublog/internal/session"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// first interrupt cancels in-flight calls, the next one kills the process
		<-ctx.Done()
		stop()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(logging.Options{
		Backend: cfg.LogBackend,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  os.Stderr,
	})

	repos := repomanager.NewMemoryRepositoryManager()
	if cfg.Seed {
		if err := seed.Load(ctx, repos); err != nil {
			log.Fatalf("%v", err)
		}
		logger.Info(ctx, "demo data loaded")
	}

	sessions := session.NewStore(repos.Identities(), []byte(cfg.SessionSecret), session.WithTTL(cfg.SessionTTL))
	api := services.NewAPI(repos, sessions, latency.NewSimulator(cfg.LatencyScale),
		services.WithDefaultPassword(cfg.DefaultTeacherPassword),
		services.WithLogger(logger),
	)

	cli.NewApp(api, os.Stdin, os.Stdout, logger).Run(ctx)
}
