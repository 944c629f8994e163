package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	TokenFormatPaseto = "paseto"
	TokenFormatJWT    = "jwt"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

type AppConfig struct {
	Host  string
	Port  string
	Debug bool

	MongoURI string
	MongoDB  string

	TokenSecret     string
	TokenFormat     string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	// SecretGenerated is set when no TOKEN_SECRET was given in debug mode
	// and an ephemeral one was generated instead.
	SecretGenerated bool

	CORSOrigins  []string
	SeedDemoUser bool
}

// LoadConfig reads configuration from the environment. Call godotenv.Load
// beforehand to pick up a .env file.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnv("PORT", "5000"),
		MongoURI:    getEnv("MONGOSTRING", ""),
		MongoDB:     getEnv("MONGO_DB", DefaultDBName),
		TokenSecret: getEnv("TOKEN_SECRET", ""),
		TokenFormat: strings.ToLower(getEnv("TOKEN_FORMAT", TokenFormatPaseto)),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "")),
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = defaultCORSOrigins
	}

	var err error
	if cfg.Debug, err = getBool("DEBUG", false); err != nil {
		return nil, err
	}
	if cfg.SeedDemoUser, err = getBool("SEED_DEMO_USER", false); err != nil {
		return nil, err
	}
	if cfg.AccessTokenTTL, err = getSeconds("ACCESS_TOKEN_EXPIRES", 3600); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenTTL, err = getSeconds("REFRESH_TOKEN_EXPIRES", 86400); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) validate() error {
	if c.MongoURI == "" {
		return errors.New("MONGOSTRING is not set")
	}
	if c.TokenFormat != TokenFormatPaseto && c.TokenFormat != TokenFormatJWT {
		return fmt.Errorf("TOKEN_FORMAT must be %q or %q, got %q", TokenFormatPaseto, TokenFormatJWT, c.TokenFormat)
	}
	if c.TokenSecret == "" && !c.Debug {
		return errors.New("TOKEN_SECRET is not set")
	}
	return nil
}

func (c *AppConfig) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func getSeconds(key string, defaultValue int) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return time.Duration(defaultValue) * time.Second, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive number of seconds, got %q", key, value)
	}
	return time.Duration(n) * time.Second, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
