package main

import (
	"os"

	"github.com/caowens/lifted-api/internal/auth"
	"github.com/caowens/lifted-api/internal/config"
	"github.com/caowens/lifted-api/internal/database"
	"github.com/caowens/lifted-api/internal/handlers"
	"github.com/caowens/lifted-api/internal/logging"
	"github.com/caowens/lifted-api/internal/quotes"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // load .env if present (ok if missing in prod)

	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatal("loading config", "err", err)
	}

	logger := logging.New(cfg.Log)

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Fatal("configuring tokens", "err", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", "err", err)
	}
	defer db.Close()

	if err := database.CreateTables(db); err != nil {
		logger.Fatal("bootstrapping schema", "err", err)
	}

	quoteService := quotes.NewService(quotes.NewStore(db), logger)
	handler := handlers.New(db, quoteService, tokens, logger)
	router := handlers.Router(handler, tokens, logger)

	logger.Info("Lifted API starting", "addr", cfg.Server.Addr())
	if err := router.Run(cfg.Server.Addr()); err != nil {
		logger.Fatal("server failed", "err", err)
	}
}

func configPath() string {
	if path := os.Getenv("LIFTED_CONFIG"); path != "" {
		return path
	}
	return "configs/base.yaml"
}
