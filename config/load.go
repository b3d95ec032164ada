package config

import (
	"log/slog"
	"os"
	"strconv"
)

func Load() App {
	cfg := App{
		Port:          getenv("APP_PORT", "8080"),
		JWTSecret:     getenv("JWT_SECRET", "local_dev_secret"),
		DataDir:       getenv("DATA_DIR", "./data"),
		MockLatencyMS: getenvInt("MOCK_LATENCY_MS", 1000),
		Env:           getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid int env, using default", "key", k, "value", v)
		return def
	}
	return n
}
