package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Environment string          `mapstructure:"environment"`
	LogLevel    string          `mapstructure:"log_level"`
	Dataset     DatasetConfig   `mapstructure:"dataset"`
	Generator   GeneratorConfig `mapstructure:"generator"`
	Forecast    ForecastConfig  `mapstructure:"forecast"`
	Reports     ReportsConfig   `mapstructure:"reports"`
}

type DatasetConfig struct {
	RawPath      string `mapstructure:"raw_path"`
	CleanedPath  string `mapstructure:"cleaned_path"`
	EnhancedPath string `mapstructure:"enhanced_path"`
}

type GeneratorConfig struct {
	Seed         int64              `mapstructure:"seed"`
	Records      int                `mapstructure:"records"`
	StartDate    string             `mapstructure:"start_date"`
	EndDate      string             `mapstructure:"end_date"`
	ExchangeRate float64            `mapstructure:"exchange_rate"`
	Budgets      map[string]float64 `mapstructure:"budgets"`
}

type ForecastConfig struct {
	HorizonDays int     `mapstructure:"horizon_days"`
	SMAPeriod   int     `mapstructure:"sma_period"`
	TrainSplit  float64 `mapstructure:"train_split"`
}

type ReportsConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	ChartsDir string `mapstructure:"charts_dir"`
}

func Load() (*Config, error) {
	// Best effort; a missing .env is the normal case outside local dev.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	setDefaults()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, use defaults and environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.Environment = strings.ToLower(config.Environment)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the knobs that would otherwise fail deep inside a
// pipeline stage.
func (c *Config) Validate() error {
	if c.Generator.Records <= 0 {
		return fmt.Errorf("generator records must be positive, got %d", c.Generator.Records)
	}
	if c.Generator.ExchangeRate <= 0 {
		return fmt.Errorf("generator exchange rate must be positive, got %f", c.Generator.ExchangeRate)
	}
	if _, err := time.Parse("2006-01-02", c.Generator.StartDate); err != nil {
		return fmt.Errorf("invalid generator start date: %w", err)
	}
	if _, err := time.Parse("2006-01-02", c.Generator.EndDate); err != nil {
		return fmt.Errorf("invalid generator end date: %w", err)
	}
	if c.Forecast.HorizonDays <= 0 {
		return fmt.Errorf("forecast horizon must be positive, got %d", c.Forecast.HorizonDays)
	}
	if c.Forecast.TrainSplit <= 0 || c.Forecast.TrainSplit >= 1 {
		return fmt.Errorf("forecast train split must be in (0, 1), got %f", c.Forecast.TrainSplit)
	}
	return nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")

	// Dataset paths
	viper.SetDefault("dataset.raw_path", "data/aws_cost_optimization_dirty.csv")
	viper.SetDefault("dataset.cleaned_path", "data/aws_cost_optimization_cleaned.csv")
	viper.SetDefault("dataset.enhanced_path", "data/aws_cost_data_enhanced_with_finops.csv")

	// Synthetic dataset generator
	viper.SetDefault("generator.seed", 42)
	viper.SetDefault("generator.records", 218)
	viper.SetDefault("generator.start_date", "2024-01-11")
	viper.SetDefault("generator.end_date", "2026-12-03")
	viper.SetDefault("generator.exchange_rate", 83.15)
	viper.SetDefault("generator.budgets", map[string]float64{
		"EC2":    140000,
		"RDS":    110000,
		"S3":     45000,
		"Lambda": 28000,
		"ECS":    75000,
	})

	// Forecasting
	viper.SetDefault("forecast.horizon_days", 30)
	viper.SetDefault("forecast.sma_period", 7)
	viper.SetDefault("forecast.train_split", 0.8)

	// Report output
	viper.SetDefault("reports.output_dir", "reports")
	viper.SetDefault("reports.charts_dir", "visualizations")
}
