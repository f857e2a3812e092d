package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort          string
	DbHost           string
	DbPort           string
	DbUser           string
	DbPassword       string
	DbName           string
	DbParams         string
	SweepInterval    time.Duration
	SweepRuleTimeout time.Duration
	TrustedProxies   []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		DbHost:           getEnv("MYSQL_HOST", "db"),
		DbPort:           getEnv("MYSQL_PORT", "3306"),
		DbUser:           getEnv("MYSQL_USER", "famitodo"),
		DbPassword:       getEnv("MYSQL_PASSWORD", "famitodo"),
		DbName:           getEnv("MYSQL_DATABASE", "famitodo"),
		DbParams:         getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		SweepInterval:    getDurationEnv("SWEEP_INTERVAL", time.Minute),
		SweepRuleTimeout: getDurationEnv("SWEEP_RULE_TIMEOUT", 10*time.Second),
		TrustedProxies:   parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
