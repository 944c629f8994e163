package token

import (
	"fmt"
	"time"

	"github.com/o1egl/paseto"
	"golang.org/x/crypto/chacha20poly1305"

	"QR-Code-Tracker/models"
)

const kindClaim = "kind"

// PasetoMaker issues PASETO v2.local tokens. The symmetric key must be
// exactly 32 bytes.
type PasetoMaker struct {
	paseto       *paseto.V2
	symmetricKey []byte
	lifetimes    Lifetimes
	now          func() time.Time
}

func NewPasetoMaker(symmetricKey []byte, lifetimes Lifetimes, opts ...Option) (*PasetoMaker, error) {
	if len(symmetricKey) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("invalid key size: must be exactly %d bytes, got %d", chacha20poly1305.KeySize, len(symmetricKey))
	}
	o := buildOptions(opts)
	return &PasetoMaker{
		paseto:       paseto.NewV2(),
		symmetricKey: append([]byte(nil), symmetricKey...),
		lifetimes:    lifetimes,
		now:          o.now,
	}, nil
}

func (m *PasetoMaker) CreateToken(userID models.ID, kind Kind) (string, *Payload, error) {
	payload, err := newPayload(userID, kind, m.now(), m.lifetimes)
	if err != nil {
		return "", nil, err
	}

	jsonToken := paseto.JSONToken{
		Subject:    userID.Hex(),
		IssuedAt:   payload.IssuedAt,
		NotBefore:  payload.IssuedAt,
		Expiration: payload.ExpiresAt,
	}
	jsonToken.Set(kindClaim, kind.String())

	token, err := m.paseto.Encrypt(m.symmetricKey, jsonToken, "")
	if err != nil {
		return "", nil, fmt.Errorf("failed to encrypt paseto token: %w", err)
	}
	return token, payload, nil
}

func (m *PasetoMaker) VerifyToken(token string) (*Payload, error) {
	var jsonToken paseto.JSONToken
	var footer string

	if err := m.paseto.Decrypt(token, m.symmetricKey, &jsonToken, &footer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	// Decryption authenticated the token, so from here on an elapsed
	// expiration is reported as expiry rather than tampering.
	now := m.now()
	if !jsonToken.Expiration.IsZero() && !now.Before(jsonToken.Expiration) {
		return nil, ErrExpiredToken
	}
	if err := jsonToken.Validate(paseto.ValidAt(now)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := models.ParseID(jsonToken.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	kind, err := parseKind(jsonToken.Get(kindClaim))
	if err != nil {
		return nil, err
	}

	return &Payload{
		UserID:    userID,
		Kind:      kind,
		IssuedAt:  jsonToken.IssuedAt,
		ExpiresAt: jsonToken.Expiration,
	}, nil
}
