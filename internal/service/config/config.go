package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит серверные параметры; параметры подключения к базе
// собираются отдельно в internal/service/dsn.
type Config struct {
	ServerAddr string `env:"BACKEND_URL" envDefault:":3000"`

	DBConnectionLimit int `env:"DB_CONNECTION_LIMIT" envDefault:"10"`

	RedisEndpoint string `env:"REDIS_ENDPOINT"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return &cfg, nil
}
