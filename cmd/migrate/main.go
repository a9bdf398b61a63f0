package main

import (
	"flag"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/skillsync/backend/internal/config"
	"github.com/skillsync/backend/internal/repository/postgres"
)

func main() {
	_ = godotenv.Load()

	source := flag.String("source", "file://migrations", "migration source URL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := postgres.RunMigrations(cfg.Database.DSN(), *source); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
}
