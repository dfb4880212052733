package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the service configuration, read once at startup.
type Config struct {
	Port           string
	DBDriver       string // sqlite | postgres
	DBPath         string
	DatabaseURL    string
	SeedPath       string
	RedisAddr      string
	GlobeRadius    float64
	CameraDistance float64
	LogLevel       string
	LogFile        string
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found (using environment variables)")
	}

	radius, err := GetFloat("GLOBE_RADIUS", 1)
	if err != nil {
		return Config{}, err
	}
	camera, err := GetFloat("CAMERA_DISTANCE", 2.5)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:           Get("PORT", "8080"),
		DBDriver:       strings.ToLower(Get("DB_DRIVER", "sqlite")),
		DBPath:         Get("DB_PATH", "data/globe.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SeedPath:       Get("SEED_PATH", "data/seeds/milestones.json"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		GlobeRadius:    radius,
		CameraDistance: camera,
		LogLevel:       Get("LOG_LEVEL", "info"),
		LogFile:        os.Getenv("LOG_FILE"),
	}

	switch cfg.DBDriver {
	case "sqlite":
	case "postgres":
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return Config{}, fmt.Errorf("config: DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return Config{}, fmt.Errorf("config: unknown DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a number: %w", key, v, err)
	}
	return f, nil
}
