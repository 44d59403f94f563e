package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

type Config struct {
	AppEnv   string
	LogLevel zapcore.Level

	Currency currency.Unit
	Language language.Tag
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "prod"
}

// Load reads the configuration from the environment. Unset variables fall
// back to defaults, malformed ones are reported.
func Load() (Config, error) {
	level, err := zapcore.ParseLevel(get("LOG_LEVEL", "warn"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	cur, err := currency.ParseISO(get("STORE_CURRENCY", "BRL"))
	if err != nil {
		return Config{}, fmt.Errorf("STORE_CURRENCY: %w", err)
	}

	lang, err := language.Parse(get("STORE_LANGUAGE", "en"))
	if err != nil {
		return Config{}, fmt.Errorf("STORE_LANGUAGE: %w", err)
	}

	return Config{
		AppEnv:   get("APP_ENV", "dev"),
		LogLevel: level,
		Currency: cur,
		Language: lang,
	}, nil
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
