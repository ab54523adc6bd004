package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config agrupa toda la configuración del proceso, cargada desde env.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Ruta del archivo SQLite. Vacío = store en memoria (solo dev/tests).
	DBPath string `env:"DB_PATH" envDefault:"crm_pet.db"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"petcare-crm"`
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
