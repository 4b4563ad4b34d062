// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Storage StorageConfig
	Clients ClientsConfig
	Events  EventsConfig
}

type ServerConfig struct {
	Addr string `env:"HTTP_ADDR" env-default:":8080"`
}

type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// StorageConfig holds the object-store connection settings.
type StorageConfig struct {
	Endpoint  string `env:"STORAGE_ENDPOINT" env-default:"localhost:9000"`
	AccessKey string `env:"STORAGE_ACCESS_KEY"`
	SecretKey string `env:"STORAGE_SECRET_KEY"`
	UseSSL    bool   `env:"STORAGE_USE_SSL" env-default:"false"`
}

type ClientsConfig struct {
	Unstructured UnstructuredConfig
}

// UnstructuredConfig points at the remote parser for structurally complex
// workbooks.
type UnstructuredConfig struct {
	Url     string        `env:"UNSTRUCTURED_PARSER_URL" env-default:"https://unstructured-parser-258481069493.us-central1.run.app/parse"`
	Timeout time.Duration `env:"UNSTRUCTURED_PARSER_TIMEOUT" env-default:"300s"`
}

// EventsConfig drives the bucket-notification consumer. Leaving AmqpUrl empty
// disables the event trigger entirely.
type EventsConfig struct {
	AmqpUrl string `env:"EVENTS_AMQP_URL"`
	Queue   string `env:"EVENTS_QUEUE" env-default:"bucket-events"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	return &cfg, nil
}

// MustLoad panics on configuration errors; use only during startup.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
