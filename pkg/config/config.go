package config

import (
	"errors"
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for pathlight-engine.
// Configuration can come from YAML file (config.yaml) or environment
// variables; environment variables always override YAML values. Secrets
// (database password, LLM API key) must only come from environment variables.
// A single Config is built at process start and passed by injection into
// every component that needs it.
type Config struct {
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	Database DatabaseConfig `yaml:"database"`
	LLM      LLMConfig      `yaml:"llm"`
	Lesson   LessonConfig   `yaml:"lesson"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"pathlight"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"pathlight_engine"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
}

// LLMConfig holds text-generation configuration. The default base URL points
// at the DashScope OpenAI-compatible endpoint; any compatible endpoint works.
// When APIKey is empty the service runs in placeholder mode instead of
// calling the endpoint.
type LLMConfig struct {
	APIKey             string  `yaml:"-" env:"LLM_API_KEY"` // Secret - not in YAML
	BaseURL            string  `yaml:"base_url" env:"LLM_BASE_URL" env-default:"https://dashscope.aliyuncs.com/compatible-mode/v1"`
	SummaryModel       string  `yaml:"summary_model" env:"LLM_SUMMARY_MODEL" env-default:"qwen-turbo"`
	TeachingModel      string  `yaml:"teaching_model" env:"LLM_TEACHING_MODEL" env-default:"qwen-max"`
	SummaryTemperature float64 `yaml:"summary_temperature" env:"LLM_SUMMARY_TEMPERATURE" env-default:"0.3"`
	TeachTemperature   float64 `yaml:"teaching_temperature" env:"LLM_TEACHING_TEMPERATURE" env-default:"0.5"`
	TimeoutSeconds     int     `yaml:"timeout_seconds" env:"LLM_TIMEOUT_SECONDS" env-default:"60"`
}

// LessonConfig holds planning and teaching policy defaults.
type LessonConfig struct {
	// UnitMinutes is the estimated duration assigned to each lesson unit.
	UnitMinutes int `yaml:"unit_minutes" env:"LESSON_UNIT_MINUTES" env-default:"40"`
	// IntroductionBudget caps the lesson introduction length in characters.
	IntroductionBudget int `yaml:"introduction_budget" env:"LESSON_INTRODUCTION_BUDGET" env-default:"600"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. If config.yaml does not exist, configuration comes from the
// environment alone. The version parameter is injected at build time.
func Load(version string) (*Config, error) {
	cfg := &Config{Version: version}

	err := cleanenv.ReadConfig("config.yaml", cfg)
	if errors.Is(err, os.ErrNotExist) {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields that have no safe fallback.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.Database, validation.Required),
		validation.Field(&c.LLM, validation.Required),
		validation.Field(&c.Lesson, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (c DatabaseConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Host, validation.Required),
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.Database, validation.Required),
		validation.Field(&c.MigrationsPath, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (c LLMConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required),
		validation.Field(&c.SummaryModel, validation.Required),
		validation.Field(&c.TeachingModel, validation.Required),
		validation.Field(&c.TimeoutSeconds, validation.Required, validation.Min(1)),
	)
}

// Validate implements validation.Validatable.
func (c LessonConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.UnitMinutes, validation.Required, validation.Min(1)),
		validation.Field(&c.IntroductionBudget, validation.Required, validation.Min(4)),
	)
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
