package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

const (
	// Порт по умолчанию для HTTP-сервера.
	defaultServerPort = "8080"

	// Переменные окружения.
	envServerPort  = "SERVER_PORT"
	envDatabaseDSN = "DATABASE_DSN"
)

// config хранит конфигурацию сервера.
type config struct {
	Port        string
	DatabaseDSN string
}

// parseFlags разбирает флаги и переменные окружения, возвращает config или ошибку.
func parseFlags() (*config, error) {
	cfg := &config{}

	// Определяем флаги
	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт для запуска HTTP-сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к базе данных (env: %s)", envDatabaseDSN))

	// Парсим флаги
	flag.Parse()

	// Применяем переменные окружения, если флаги не заданы
	if cfg.Port == "" {
		if value, ok := os.LookupEnv(envServerPort); ok {
			cfg.Port = value
		} else {
			cfg.Port = defaultServerPort
		}
	}
	if cfg.DatabaseDSN == "" {
		if value, ok := os.LookupEnv(envDatabaseDSN); ok {
			cfg.DatabaseDSN = value
		}
	}

	// Проверяем обязательные параметры
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("не указана строка подключения к БД (--database-dsn или " + envDatabaseDSN + ")")
	}

	return cfg, nil
}
