package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all runtime settings, sourced from APP_-prefixed env vars
type Config struct {
	Port                 string `mapstructure:"PORT" validate:"required"`
	APIToken             string `mapstructure:"API_TOKEN" validate:"required"`
	DBConnStr            string `mapstructure:"DB_CONN_STR" validate:"required"`
	ShutdownGraceSeconds int    `mapstructure:"SHUTDOWN_GRACE_SECONDS" validate:"min=1"`
}

// Load reads configuration from the environment, applies defaults, and
// validates the result.
func Load(logger *zap.Logger) (*Config, error) {
	viper.SetEnvPrefix("app")
	viper.AutomaticEnv()

	// Default values
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("API_TOKEN", "dev-token")
	viper.SetDefault("DB_CONN_STR", "host=localhost port=5432 user=postgres password=postgres dbname=payroute sslmode=disable")
	viper.SetDefault("SHUTDOWN_GRACE_SECONDS", 5)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate after unmarshal
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return nil, err
	}

	return &cfg, nil
}
