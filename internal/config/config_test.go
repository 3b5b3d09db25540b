package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.Equal(t, int64(42), cfg.Generator.Seed)
	assert.Equal(t, 218, cfg.Generator.Records)
	assert.Equal(t, "2024-01-11", cfg.Generator.StartDate)
	assert.Equal(t, "2026-12-03", cfg.Generator.EndDate)
	assert.Equal(t, 83.15, cfg.Generator.ExchangeRate)
	assert.Equal(t, 140000.0, cfg.Generator.Budgets["EC2"])
	assert.Len(t, cfg.Generator.Budgets, 5)

	assert.Equal(t, 30, cfg.Forecast.HorizonDays)
	assert.Equal(t, 7, cfg.Forecast.SMAPeriod)
	assert.Equal(t, 0.8, cfg.Forecast.TrainSplit)

	assert.Equal(t, "reports", cfg.Reports.OutputDir)
	assert.Equal(t, "visualizations", cfg.Reports.ChartsDir)
	assert.NotEmpty(t, cfg.Dataset.EnhancedPath)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Generator: GeneratorConfig{
				Records:      218,
				StartDate:    "2024-01-11",
				EndDate:      "2026-12-03",
				ExchangeRate: 83.15,
			},
			Forecast: ForecastConfig{HorizonDays: 30, SMAPeriod: 7, TrainSplit: 0.8},
		}
	}

	assert.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero records", func(c *Config) { c.Generator.Records = 0 }},
		{"negative exchange rate", func(c *Config) { c.Generator.ExchangeRate = -1 }},
		{"bad start date", func(c *Config) { c.Generator.StartDate = "11-01-2024" }},
		{"bad end date", func(c *Config) { c.Generator.EndDate = "" }},
		{"zero horizon", func(c *Config) { c.Forecast.HorizonDays = 0 }},
		{"train split too high", func(c *Config) { c.Forecast.TrainSplit = 1.0 }},
		{"train split zero", func(c *Config) { c.Forecast.TrainSplit = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
