package dsn

import (
	"fmt"
	"os"
)

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// FromEnv собирает DSN строку из переменных окружения
func FromEnv() string {
	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	pass := os.Getenv("DB_PASSWORD")
	dbname := envOr("DB_NAME", "legendidle")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
}

func FromEnvE2E() string {
	host := os.Getenv("DB_HOST_TEST")
	if host == "" {
		return ""
	}
	port := os.Getenv("DB_PORT_TEST")
	user := os.Getenv("DB_USER_TEST")
	pass := os.Getenv("DB_PASSWORD_TEST")
	dbname := os.Getenv("DB_NAME_TEST")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
}
