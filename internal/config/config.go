package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const DefaultPath = "config.yml"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	API      APIConfig      `yaml:"api"`
	Log      LogConfig      `yaml:"log"`
	Journal  JournalConfig  `yaml:"journal"`
	Ops      OpsConfig      `yaml:"ops"`
	Scenario ScenarioConfig `yaml:"scenario"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"ARTIFACTS_BASE_URL" env-default:"https://api.artifactsmmo.com"`
	Token   string        `yaml:"token" env:"ARTIFACTS_TOKEN" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env:"ARTIFACTS_TIMEOUT" env-default:"20s"`
	Retry   RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	// MaxAttempts of zero retries transient failures forever.
	MaxAttempts uint          `yaml:"max_attempts" env:"ARTIFACTS_RETRY_MAX_ATTEMPTS" env-default:"0"`
	Backoff     time.Duration `yaml:"backoff" env:"ARTIFACTS_RETRY_BACKOFF" env-default:"1s"`
}

type LogConfig struct {
	Level    string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding string `yaml:"encoding" env:"LOG_ENCODING" env-default:"console"`
}

type JournalConfig struct {
	// DSN selects the postgres journal; empty keeps the journal in memory.
	DSN string `yaml:"dsn" env:"ARTIFACTS_DB_DSN"`
}

type OpsConfig struct {
	Addr string `yaml:"addr" env:"ARTIFACTS_OPS_ADDR"`
}

type ScenarioConfig struct {
	MaxLoopActions int  `yaml:"max_loop_actions" env:"ARTIFACTS_MAX_LOOP_ACTIONS" env-default:"1000"`
	LogLastAction  bool `yaml:"log_last_action" env:"ARTIFACTS_LOG_LAST_ACTION" env-default:"true"`
}

// Load reads path when it exists and falls back to the environment alone.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	var cfg Config
	if _, statErr := os.Stat(path); statErr == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.API.Token == "" {
		return fmt.Errorf("%w: api token is required", ErrInvalidConfig)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%w: api timeout must be positive", ErrInvalidConfig)
	}
	if c.API.Retry.Backoff < 0 {
		return fmt.Errorf("%w: retry backoff must not be negative", ErrInvalidConfig)
	}
	if c.Scenario.MaxLoopActions < 0 {
		return fmt.Errorf("%w: max_loop_actions must not be negative", ErrInvalidConfig)
	}
	return nil
}
