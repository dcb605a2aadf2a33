package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config - структура для хранения конфигураций приложения
type Config struct {
	ServerAddress  string  `mapstructure:"SERVER_ADDRESS"`
	PostgresConn   string  `mapstructure:"POSTGRES_CONN"`
	MigrationURL   string  `mapstructure:"MIGRATION_URL"`
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`
}

// LoadConfig загружает конфигурацию из файла app.env; при отсутствии файла
// используются переменные окружения и значения по умолчанию.
func LoadConfig(path string) (cfg Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("POSTGRES_CONN", "")
	viper.SetDefault("MIGRATION_URL", "file://migrations")
	viper.SetDefault("RATE_LIMIT_RPS", 0.0)
	viper.SetDefault("RATE_LIMIT_BURST", 0)

	if err = viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}
	err = viper.Unmarshal(&cfg)
	return
}
