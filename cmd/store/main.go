package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/nikolayk812/virtualstore/internal/checkout"
	"github.com/nikolayk812/virtualstore/internal/config"
	"github.com/nikolayk812/virtualstore/internal/domain"
	"github.com/nikolayk812/virtualstore/internal/shell"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("newLogger: %v", err)
	}

	err = run(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("store stopped", zap.Error(err))
	}
	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	console := shell.New(os.Stdin, os.Stdout, cfg.Language, logger)

	customer, err := console.ReadCustomer()
	if err != nil {
		return err
	}

	session, err := checkout.NewSession(domain.DefaultCatalog(cfg.Currency), customer,
		checkout.WithLogger(logger))
	if err != nil {
		return err
	}

	return console.Run(ctx, session)
}

// loggerConfig writes to stderr so log lines stay out of the menu on stdout.
func loggerConfig(cfg config.Config) zap.Config {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return loggerConfig(cfg).Build()
}
