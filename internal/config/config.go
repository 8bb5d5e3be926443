package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App  AppConfig  `mapstructure:"app"`
	Data DataConfig `mapstructure:"data"`
	UI   UIConfig   `mapstructure:"ui"`
	Log  LogConfig  `mapstructure:"log"`
}

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	ID      string `mapstructure:"id" validate:"required"`
	Version string `mapstructure:"version"`
}

// DataConfig locates the fitness data file
type DataConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

// UIConfig holds window settings
type UIConfig struct {
	BackgroundImage string `mapstructure:"background_image"`
	Width           int    `mapstructure:"width" validate:"gt=0"`
	Height          int    `mapstructure:"height" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// Load reads configuration from an optional .env file and the environment.
func Load(envFiles ...string) (*Config, error) {
	// Load .env file if it exists (ignore errors)
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "warning" {
		cfg.Log.Level = "warn"
	}
	if !v.IsSet("log.level") && v.GetString("debug") == "1" {
		cfg.Log.Level = "debug"
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Personal Fitness Tracker")
	v.SetDefault("app.id", "com.fitnesstracker.personal")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("data.file", "fitness_data.json")

	v.SetDefault("ui.background_image", "fitness_background.png")
	v.SetDefault("ui.width", 400)
	v.SetDefault("ui.height", 600)

	v.SetDefault("log.json", false)
}

func bindEnvVars(v *viper.Viper) {
	v.BindEnv("data.file", "FITNESS_DATA_FILE")

	v.BindEnv("ui.background_image", "FITNESS_BACKGROUND_IMAGE")
	v.BindEnv("ui.width", "FITNESS_WINDOW_WIDTH")
	v.BindEnv("ui.height", "FITNESS_WINDOW_HEIGHT")

	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.json", "FITNESS_LOG_JSON")
	v.BindEnv("debug", "DEBUG")
}

func validateConfig(cfg *Config) error {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return validator.New().Struct(cfg)
}
