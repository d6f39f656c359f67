package main

import (
	"fmt"
	"strings"

	"tg_account_bot/internal/api"
	"tg_account_bot/internal/bot"
	"tg_account_bot/internal/repository"
	"tg_account_bot/internal/scheduler"
	"tg_account_bot/internal/telegram"

	"github.com/spf13/viper"
)

const (
	configPath   = "./"
	configName   = "config"
	configFormat = "yaml"
)

type Config struct {
	Database  repository.Config `yaml:"database"`
	Bot       bot.Config        `yaml:"bot"`
	Telegram  telegram.Config   `yaml:"telegram"`
	Scheduler scheduler.Config  `yaml:"scheduler"`
	Server    api.Config        `yaml:"server"`

	AccountPassword string `yaml:"accountPassword"`
	LogLevel        string `yaml:"logLevel"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(configName)
	viper.AddConfigPath(configPath)
	viper.SetConfigType(configFormat)

	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("scheduler.timezone", "Africa/Lagos")
	viper.SetDefault("scheduler.openHour", 8)
	viper.SetDefault("scheduler.closeHour", 22)
	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("logLevel", "info")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("bot.token is required")
	}
	if c.Bot.AdminID == 0 {
		return fmt.Errorf("bot.adminId is required")
	}
	if c.Telegram.APIID == 0 {
		return fmt.Errorf("telegram.apiId is required")
	}
	if c.Telegram.APIHash == "" {
		return fmt.Errorf("telegram.apiHash is required")
	}
	return nil
}
