package config

import (
	"fmt"

	"QR-Code-Tracker/pkg/token"
	util "QR-Code-Tracker/pkg/utils"
)

// NewTokenMaker builds the process-wide token maker. With PASETO the secret
// is a base64 encoded 32-byte key; with JWT the raw string is the HMAC key.
// In debug mode a missing secret is replaced by a random one.
func NewTokenMaker(cfg *AppConfig) (token.Maker, error) {
	if cfg.TokenSecret == "" {
		if !cfg.Debug {
			return nil, fmt.Errorf("TOKEN_SECRET is not set")
		}
		secret, err := util.GenerateBase64Key(32)
		if err != nil {
			return nil, err
		}
		cfg.TokenSecret = secret
		cfg.SecretGenerated = true
	}

	lifetimes := token.Lifetimes{Access: cfg.AccessTokenTTL, Refresh: cfg.RefreshTokenTTL}

	switch cfg.TokenFormat {
	case TokenFormatJWT:
		return token.NewJWTMaker([]byte(cfg.TokenSecret), lifetimes)
	default:
		key, err := util.DecodeBase64Key(cfg.TokenSecret)
		if err != nil {
			return nil, fmt.Errorf("TOKEN_SECRET is not valid base64: %w", err)
		}
		return token.NewPasetoMaker(key, lifetimes)
	}
}
