package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsFromEnvironment(t *testing.T) {
	// No config.yaml in the test working directory, so everything comes from
	// env defaults.
	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Version)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "local", cfg.Env)

	assert.Equal(t, "https://dashscope.aliyuncs.com/compatible-mode/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "qwen-turbo", cfg.LLM.SummaryModel)
	assert.Equal(t, "qwen-max", cfg.LLM.TeachingModel)
	assert.InDelta(t, 0.3, cfg.LLM.SummaryTemperature, 1e-9)
	assert.InDelta(t, 0.5, cfg.LLM.TeachTemperature, 1e-9)

	assert.Equal(t, 40, cfg.Lesson.UnitMinutes)
	assert.Equal(t, 600, cfg.Lesson.IntroductionBudget)
	assert.Equal(t, "migrations", cfg.Database.MigrationsPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LESSON_UNIT_MINUTES", "25")
	t.Setenv("LLM_TEACHING_MODEL", "qwen-plus")

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 25, cfg.Lesson.UnitMinutes)
	assert.Equal(t, "qwen-plus", cfg.LLM.TeachingModel)
}

func TestConfig_ValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing port", func(c *Config) { c.Port = "" }},
		{"db port out of range", func(c *Config) { c.Database.Port = 70000 }},
		{"missing llm base url", func(c *Config) { c.LLM.BaseURL = "" }},
		{"zero unit minutes", func(c *Config) { c.Lesson.UnitMinutes = 0 }},
		{"introduction budget too small", func(c *Config) { c.Lesson.IntroductionBudget = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("test")
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "pathlight",
		Password: "secret",
		Database: "pathlight_engine",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=pathlight password=secret dbname=pathlight_engine sslmode=require",
		cfg.ConnectionString())
}
