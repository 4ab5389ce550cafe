package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App            AppConfig
	Server         ServerConfig
	Database       DatabaseConfig
	JWT            JWTConfig
	Redis          RedisConfig
	Recommendation RecommendationConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	SnapshotTTL   time.Duration
}

type RecommendationConfig struct {
	// optional YAML file overriding the engine defaults
	ConfigFile string

	BreakerFailures int
	BreakerTimeout  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	redisEnabled, err := strconv.ParseBool(getEnv("REDIS_ENABLED", "false"))
	if err != nil {
		return nil, errors.New("invalid REDIS_ENABLED value")
	}

	snapshotTTL, err := time.ParseDuration(getEnv("REDIS_SNAPSHOT_TTL", "60s"))
	if err != nil {
		return nil, errors.New("invalid REDIS_SNAPSHOT_TTL value")
	}

	requestTimeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, errors.New("invalid REQUEST_TIMEOUT value")
	}

	breakerFailures, err := strconv.Atoi(getEnv("RECO_BREAKER_FAILURES", "5"))
	if err != nil || breakerFailures <= 0 {
		return nil, errors.New("invalid RECO_BREAKER_FAILURES value")
	}

	breakerTimeout, err := time.ParseDuration(getEnv("RECO_BREAKER_TIMEOUT", "30s"))
	if err != nil {
		return nil, errors.New("invalid RECO_BREAKER_TIMEOUT value")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Data Market API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: requestTimeout,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "data_market"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			Enabled:       redisEnabled,
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			SnapshotTTL:   snapshotTTL,
		},
		Recommendation: RecommendationConfig{
			ConfigFile:      getEnv("RECO_CONFIG_FILE", ""),
			BreakerFailures: breakerFailures,
			BreakerTimeout:  breakerTimeout,
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
