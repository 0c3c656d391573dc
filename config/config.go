package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultTokenURI is the Google endpoint stored tokens are refreshed against.
	DefaultTokenURI = "https://accounts.google.com/o/oauth2/token"
	// DefaultCallbackURL is where the frontend receives the authorization code.
	DefaultCallbackURL = "http://localhost:5173"
)

var (
	ErrMissingClientID     = errors.New("google.client_id is required")
	ErrMissingClientSecret = errors.New("google.client_secret is required")
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Storage
	Database DatabaseConfig

	// Google OAuth client
	Google GoogleConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigin string
}

type DatabaseConfig struct {
	Path string
}

// GoogleConfig is the OAuth client the relay is registered as.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	TokenURI     string
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first; real environment variables win over it.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigin = v.GetString("cors.allowed_origin")

	cfg.Database.Path = v.GetString("database.path")

	cfg.Google.ClientID = v.GetString("google.client_id")
	cfg.Google.ClientSecret = v.GetString("google.client_secret")
	cfg.Google.CallbackURL = v.GetString("google.callback_url")
	cfg.Google.TokenURI = v.GetString("google.token_uri")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Google.ClientID == "" {
		return ErrMissingClientID
	}
	if c.Google.ClientSecret == "" {
		return ErrMissingClientSecret
	}
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("invalid http_server.port %d", c.HTTPServer.Port)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origin", DefaultCallbackURL)
	v.SetDefault("database.path", defaultDatabasePath())
	v.SetDefault("google.callback_url", DefaultCallbackURL)
	v.SetDefault("google.token_uri", DefaultTokenURI)
}

func defaultDatabasePath() string {
	return filepath.Join(xdg.DataHome, "gcal-relay", "relay.db")
}
