package main

import (
	"log"
	"strconv"

	"trendwatch-backend/internal/shared/utils"
)

// Config holds all configuration for the worker
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SMTPHost      string
	SMTPPort      string
	EmailFrom     string
	SiteName      string
	SiteURL       string
}

// loadConfig loads configuration from environment variables
func loadConfig() *Config {
	redisDB, err := strconv.Atoi(utils.GetEnvVariable("REDIS_DB", "0"))
	if err != nil {
		redisDB = 0
	}

	cfg := &Config{
		RedisAddr:     utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
		RedisPassword: utils.GetEnvVariable("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		SMTPHost:      utils.GetEnvVariable("SMTP_HOST", "localhost"),
		SMTPPort:      utils.GetEnvVariable("SMTP_PORT", "1025"),
		EmailFrom:     utils.GetEnvVariable("EMAIL_FROM", "noreply@trendwatch.dev"),
		SiteName:      utils.GetEnvVariable("SITE_NAME", "TrendWatch Now"),
		SiteURL:       utils.GetEnvVariable("SITE_BASE_URL", "https://trendwatch-now.web.app"),
	}

	log.Printf("[Config] Redis: %s, SMTP: %s:%s",
		cfg.RedisAddr, cfg.SMTPHost, cfg.SMTPPort)

	return cfg
}
