package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from a .env file and config.yaml.
// Environment variables override same-named settings from the file.
func LoadConfig() {
	// Load environment variables from .env; skip silently if absent.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, skipping.")
	}

	viper.SetConfigName("config")                          // config file name (without extension)
	viper.SetConfigType("yaml")                            // config file type
	viper.AddConfigPath(".")                               // look in the working directory
	viper.AutomaticEnv()                                   // read matching environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map dots in keys to underscores for env vars

	viper.SetDefault("bot.prefix", ".")
	viper.SetDefault("database.path", "data/fyi.db")
	// The sweep interval is fixed at process start; changing it requires a
	// restart.
	viper.SetDefault("sweep.interval", "@hourly")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// A missing config file is fine; environment variables and
			// defaults cover everything required.
			log.Printf("Config file not found, using environment variables and defaults.")
		} else {
			panic(fmt.Errorf("fatal error reading config file: %w", err))
		}
	}
}
