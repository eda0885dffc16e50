package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode       string        `yaml:"mode" env:"TTT_MODE" env-default:"two_player"`
	Difficulty string        `yaml:"difficulty" env:"TTT_DIFFICULTY" env-default:"medium"`
	ReplyDelay time.Duration `yaml:"reply-delay" env:"TTT_REPLY_DELAY" env-default:"500ms"`
	Telemetry  Telemetry     `yaml:"telemetry"`
}

type Telemetry struct {
	// Endpoint of the OTLP gRPC collector. Export is disabled when empty.
	Endpoint       string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName    string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tic-tac-toe"`
	ServiceVersion string `yaml:"service-version" env-default:"v0.1.0"`
}

// Load reads the yaml file at path, if any, and applies environment
// overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}
	return config, nil
}
