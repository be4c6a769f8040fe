package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultDataPath = "frontend/assets/data/quiz-data.json"
	envPrefix       = "QUIZ_VALIDATOR"
)

type Config struct {
	Data   DataConfig
	Logger LoggerConfig
}

type DataConfig struct {
	Path          string `yaml:"path"`
	RequiredField string `yaml:"required_field"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

// LoadConfig reads config.yaml from "." or "./config", or configFile when it
// is set. A missing config file is fine; defaults and QUIZ_VALIDATOR_*
// environment variables still apply.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("data.path", DefaultDataPath)
	v.SetDefault("data.required_field", "progressKey")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Data: DataConfig{
			Path:          v.GetString("data.path"),
			RequiredField: v.GetString("data.required_field"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
	}

	if strings.TrimSpace(cfg.Data.Path) == "" {
		return nil, errors.New("data.path must not be empty")
	}
	if strings.TrimSpace(cfg.Data.RequiredField) == "" {
		return nil, errors.New("data.required_field must not be empty")
	}

	return cfg, nil
}
