package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Engine   EngineConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// EngineConfig carries the recommendation tuning constants. The similarity
// floor and neighbor cap are deliberate configuration values rather than
// magic numbers inside the engine.
type EngineConfig struct {
	SimilarityFloor     float64
	MaxNeighbors        int
	ContentWeight       float64
	CollaborativeWeight float64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "MovieRadar API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "movieradar"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Engine: EngineConfig{
			SimilarityFloor:     getEnvFloat("ENGINE_SIMILARITY_FLOOR", 0.1),
			MaxNeighbors:        getEnvInt("ENGINE_MAX_NEIGHBORS", 5),
			ContentWeight:       getEnvFloat("ENGINE_CONTENT_WEIGHT", 0.6),
			CollaborativeWeight: getEnvFloat("ENGINE_COLLABORATIVE_WEIGHT", 0.4),
		},
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Engine.MaxNeighbors <= 0 {
		return nil, errors.New("engine max neighbors must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}

	return defaultVal
}
