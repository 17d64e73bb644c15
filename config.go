package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	AppPort       string
	DBPath        string
	SessionSecret string
	SecureCookies bool
}

func loadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       os.Getenv("APP_PORT"),
		DBPath:        os.Getenv("DB_PATH"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SecureCookies: os.Getenv("SECURE_COOKIES") == "true",
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "dogbnb.db"
	}
	if cfg.SessionSecret == "" {
		logrus.Warn("SESSION_SECRET not set, using default secret")
		cfg.SessionSecret = "dev-secret-do-not-use-in-production"
	}

	return cfg
}
