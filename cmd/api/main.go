package main

import (
	"flag"
	"movies/proj/internal/config"
	"movies/proj/internal/lib/logger"
	"movies/proj/internal/lib/validator"
	"movies/proj/internal/storage/memory"
	"os"

	"github.com/joho/godotenv"
)

const version = "1.0.0"

func main() {
	// .env is optional
	_ = godotenv.Load()
	cfgPath := flag.String("config", envOr("CONFIG_PATH", "config/local.yml"), "path to config file")

	flag.Parse()
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)
	storage, err := memory.Load(cfg.Storage.SeedPath, validator.New())
	if err != nil {
		log.Error("failed to load initial movies", "seed_path", cfg.Storage.SeedPath, "reason", err.Error())
		os.Exit(1)
	}
	log.Info("movies loaded", "seed_path", cfg.Storage.SeedPath)
	app := NewApplication(cfg, log, storage)
	if err := app.serve(); err != nil {
		app.log.Error("shutting down the server", "reason", err.Error())
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
