package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Campaign CampaignConfig
	JWT      JWTConfig
	Admin    AdminConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// CampaignConfig holds campaign-specific configuration
type CampaignConfig struct {
	// Timezone is the fixed campaign timezone; all day-resolution
	// comparisons happen in it.
	Timezone string
}

// JWTConfig holds JWT-specific configuration for the admin surface
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// AdminConfig holds the operator account credentials
type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt hash
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Nested keys map to underscore-delimited env vars: JWT.Secret is
	// JWT_SECRET, Admin.PasswordHash is ADMIN_PASSWORDHASH.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedOrigins", []string{"http://localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "phone-lottery")
	viper.SetDefault("MongoDB.Timeout", 10*time.Second)
	viper.SetDefault("Campaign.Timezone", "Asia/Taipei")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("LogLevel", "info")

	// Unmarshal only sees keys viper knows about, so the env-only
	// credential fields must be registered even though they have no
	// usable default.
	viper.SetDefault("JWT.Secret", "")
	viper.SetDefault("Admin.Email", "")
	viper.SetDefault("Admin.PasswordHash", "")
}
