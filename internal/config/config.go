package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type CacheConfig struct {
	// BundleTTLSeconds bounds how long an aggregated bundle may be served
	// without recomputing from the store.
	BundleTTLSeconds int `mapstructure:"bundle_ttl_seconds"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// BundleTTL returns the cache TTL as a duration.
func (c *Config) BundleTTL() time.Duration {
	return time.Duration(c.Cache.BundleTTLSeconds) * time.Second
}

// LoadConfig reads config.yaml from the given path (and the working
// directory), with APP_-prefixed environment variables taking precedence.
func LoadConfig(path string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "APP_DATABASE_URL")
	viper.BindEnv("server.port", "APP_SERVER_PORT")
	viper.BindEnv("cache.bundle_ttl_seconds", "APP_CACHE_BUNDLE_TTL_SECONDS")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: config file not found, relying on defaults and environment")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Cache.BundleTTLSeconds <= 0 {
		cfg.Cache.BundleTTLSeconds = DefaultBundleTTLSeconds
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: database URL is not set in config")
	}

	return &cfg, nil
}
