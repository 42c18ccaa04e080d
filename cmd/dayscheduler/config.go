package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	scheduler "github.com/TudorHulban/dayscheduler"
)

// Config is read from environment variables, flags override it.
type Config struct {
	Environment string
	LogLevel    string
	Policy      string
}

func loadConfig() (*Config, error) {
	result := &Config{
		Environment: getEnv("DAYSCHEDULER_ENV", "production"),
		LogLevel:    getEnv("DAYSCHEDULER_LOG_LEVEL", ""),
		Policy:      getEnv("DAYSCHEDULER_POLICY", ""),
	}

	if _, errPolicy := scheduler.ParsePolicyType(result.Policy); errPolicy != nil {
		return nil,
			fmt.Errorf("DAYSCHEDULER_POLICY: %w", errPolicy)
	}

	if _, errLevel := result.level(); errLevel != nil {
		return nil,
			fmt.Errorf("DAYSCHEDULER_LOG_LEVEL: %w", errLevel)
	}

	return result, nil
}

// level defaults to debug in development, info otherwise.
func (c *Config) level() (zerolog.Level, error) {
	if len(c.LogLevel) == 0 {
		if c.Environment == "development" {
			return zerolog.DebugLevel, nil
		}

		return zerolog.InfoLevel, nil
	}

	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
