package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseURL    string        `env:"DATABASE_URL,required"`
	Port           string        `env:"PORT" envDefault:"8080"`
	BodyLimit      string        `env:"BODY_LIMIT" envDefault:"210M"`
	ImportWorkers  int           `env:"IMPORT_WORKERS" envDefault:"10"`
	ImportTimeout  time.Duration `env:"IMPORT_TIMEOUT" envDefault:"0"`
	MaxUploadBytes int64         `env:"MAX_UPLOAD_BYTES" envDefault:"209715200"`
	MaxUploadRows  int64         `env:"MAX_UPLOAD_ROWS" envDefault:"1000000"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ImportWorkers <= 0 || cfg.ImportWorkers > 10 {
		cfg.ImportWorkers = 10
	}
	return cfg, nil
}
