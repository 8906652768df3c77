package config

import "github.com/spf13/viper"

// Config holds everything the process reads from the environment.
type Config struct {
	Addr        string
	DatabaseURL string
	SessionKey  string
	RabbitURL   string
	LogLevel    string
}

// Load reads configuration from environment variables with local-dev
// defaults. An empty RABBITMQ_URL disables order event publishing.
func Load() Config {
	viper.SetDefault("APP_PORT", ":5600")
	viper.SetDefault("DATABASE_URL",
		"host=localhost user=postgres password=postgres dbname=espetinho port=5432 sslmode=disable")
	viper.SetDefault("SESSION_KEY", "dev-secret-key")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.AutomaticEnv()

	return Config{
		Addr:        viper.GetString("APP_PORT"),
		DatabaseURL: viper.GetString("DATABASE_URL"),
		SessionKey:  viper.GetString("SESSION_KEY"),
		RabbitURL:   viper.GetString("RABBITMQ_URL"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
	}
}
