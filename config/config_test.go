package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QR-Code-Tracker/models"
	"QR-Code-Tracker/pkg/token"
)

const testSecret = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="

func setBaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HOST", "PORT", "DEBUG", "MONGO_DB", "TOKEN_FORMAT", "ACCESS_TOKEN_EXPIRES",
		"REFRESH_TOKEN_EXPIRES", "CORS_ORIGINS", "SEED_DEMO_USER",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("MONGOSTRING", "mongodb://localhost:27017")
	t.Setenv("TOKEN_SECRET", testSecret)
}

func TestLoadConfig_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.Address())
	assert.False(t, cfg.Debug)
	assert.Equal(t, DefaultDBName, cfg.MongoDB)
	assert.Equal(t, TokenFormatPaseto, cfg.TokenFormat)
	assert.Equal(t, 3600*time.Second, cfg.AccessTokenTTL)
	assert.Equal(t, 86400*time.Second, cfg.RefreshTokenTTL)
	assert.Equal(t, defaultCORSOrigins, cfg.CORSOrigins)
	assert.False(t, cfg.SeedDemoUser)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "True")
	t.Setenv("TOKEN_FORMAT", "JWT")
	t.Setenv("ACCESS_TOKEN_EXPIRES", "60")
	t.Setenv("REFRESH_TOKEN_EXPIRES", "120")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("SEED_DEMO_USER", "1")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Address())
	assert.True(t, cfg.Debug)
	assert.Equal(t, TokenFormatJWT, cfg.TokenFormat)
	assert.Equal(t, time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 2*time.Minute, cfg.RefreshTokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.SeedDemoUser)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"missing mongo uri", "MONGOSTRING", ""},
		{"missing secret outside debug", "TOKEN_SECRET", ""},
		{"unknown token format", "TOKEN_FORMAT", "macaroon"},
		{"non numeric ttl", "ACCESS_TOKEN_EXPIRES", "soon"},
		{"negative ttl", "REFRESH_TOKEN_EXPIRES", "-5"},
		{"bad bool", "DEBUG", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewTokenMaker(t *testing.T) {
	t.Run("paseto", func(t *testing.T) {
		cfg := &AppConfig{TokenSecret: testSecret, TokenFormat: TokenFormatPaseto, AccessTokenTTL: time.Hour, RefreshTokenTTL: 2 * time.Hour}
		maker, err := NewTokenMaker(cfg)
		require.NoError(t, err)
		assert.IsType(t, &token.PasetoMaker{}, maker)

		userID := models.NewID()
		tok, _, err := maker.CreateToken(userID, token.Access)
		require.NoError(t, err)
		assert.Contains(t, tok, "v2.local.")
	})

	t.Run("jwt", func(t *testing.T) {
		cfg := &AppConfig{TokenSecret: "plain-secret", TokenFormat: TokenFormatJWT, AccessTokenTTL: time.Hour, RefreshTokenTTL: 2 * time.Hour}
		maker, err := NewTokenMaker(cfg)
		require.NoError(t, err)
		assert.IsType(t, &token.JWTMaker{}, maker)
	})

	t.Run("paseto secret of wrong length", func(t *testing.T) {
		cfg := &AppConfig{TokenSecret: "c2hvcnQ=", TokenFormat: TokenFormatPaseto}
		_, err := NewTokenMaker(cfg)
		assert.Error(t, err)
	})

	t.Run("debug generates secret", func(t *testing.T) {
		cfg := &AppConfig{Debug: true, TokenFormat: TokenFormatPaseto, AccessTokenTTL: time.Hour, RefreshTokenTTL: 2 * time.Hour}
		_, err := NewTokenMaker(cfg)
		require.NoError(t, err)
		assert.True(t, cfg.SecretGenerated)
		assert.NotEmpty(t, cfg.TokenSecret)
	})

	t.Run("missing secret outside debug", func(t *testing.T) {
		_, err := NewTokenMaker(&AppConfig{TokenFormat: TokenFormatPaseto})
		assert.Error(t, err)
	})
}
