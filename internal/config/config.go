package config

import "github.com/spf13/viper"

// Config holds everything the process reads from its environment.
// It is built once in main and passed into the components that need
// it; nothing looks up viper after startup.
type Config struct {
	AppPort     string
	DatabaseDSN string
	JWTSecret   string
	TMDBAPIKey  string
	RabbitMQURL string
}

// Load reads configuration from environment variables with sane
// defaults for local development.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("JWT_SECRET", "dev_secret_change_me")
	viper.SetDefault("TMDB_API_KEY", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return &Config{
		AppPort:     viper.GetString("APP_PORT"),
		DatabaseDSN: viper.GetString("DATABASE_DSN"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		TMDBAPIKey:  viper.GetString("TMDB_API_KEY"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
	}
}
