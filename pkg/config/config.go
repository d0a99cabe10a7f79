package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// New loads the configuration from the environment. Variables found in an optional .env file in the
// working directory are loaded first but never override variables already set.
func New() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %v", err)
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %v", err)
	}

	if err := validator.New().Struct(c); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %v", err)
	}

	return c, nil
}

type Config struct {
	Environment    string     `env:"ENVIRONMENT" envDefault:"production"`
	BasePath       string     `env:"BASE_PATH"`
	Port           int        `env:"PORT" envDefault:"8080" validate:"gt=0,lte=65535"`
	LogFormat      string     `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json pretty text"`
	LogLevel       slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	AllowedOrigins []string   `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	JaegerEndpoint string     `env:"JAEGER_ENDPOINT"`
	Postgresql     Postgresql `envPrefix:"DATABASE_"`
	Redis          Redis      `envPrefix:"REDIS_"`
}

type Postgresql struct {
	Host         string `env:"HOST,required"`
	Port         int    `env:"PORT" envDefault:"5432"`
	Username     string `env:"USERNAME,required"`
	Password     string `env:"PASSWORD,required"`
	DatabaseName string `env:"NAME,required"`
}

type Redis struct {
	Host     string        `env:"HOST"`
	Port     int           `env:"PORT" envDefault:"6379"`
	Password string        `env:"PASSWORD"`
	Database int           `env:"DB" envDefault:"0"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
}

// Enabled reports whether a Redis host was configured.
func (r Redis) Enabled() bool {
	return r.Host != ""
}

func (c Config) ListenAddress() string {
	return fmt.Sprintf(":%d", c.Port)
}
