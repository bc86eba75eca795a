package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string
	WeightsPath   string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		WeightsPath:   os.Getenv("DTS_WEIGHTS_FILE"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}

	return cfg
}
