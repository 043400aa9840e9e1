// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBDriver      string `mapstructure:"DB_DRIVER" validate:"required"`
	DBSource      string `mapstructure:"DB_SOURCE" validate:"required"`
	DBMaxConns    int32  `mapstructure:"DB_MAX_CONNS" validate:"gte=0"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS" validate:"required,hostname_port"`
	Environment   string `mapstructure:"GO_ENV" validate:"omitempty,oneof=development test production"`
}

// Load reads configuration from the app.env file in path, lets environment
// variables override it and validates the result.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return c, errors.Wrap(err, "read config")
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, errors.Wrap(err, "unmarshal config")
	}

	if err := validator.New().Struct(c); err != nil {
		return c, errors.Wrap(err, "invalid config")
	}

	return c, nil
}
