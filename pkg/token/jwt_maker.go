package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"QR-Code-Tracker/models"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Kind string `json:"kind"`
}

// JWTMaker issues HS256-signed JWTs.
type JWTMaker struct {
	secret    []byte
	lifetimes Lifetimes
	now       func() time.Time
}

func NewJWTMaker(secret []byte, lifetimes Lifetimes, opts ...Option) (*JWTMaker, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret not configured")
	}
	o := buildOptions(opts)
	return &JWTMaker{
		secret:    append([]byte(nil), secret...),
		lifetimes: lifetimes,
		now:       o.now,
	}, nil
}

func (m *JWTMaker) CreateToken(userID models.ID, kind Kind) (string, *Payload, error) {
	payload, err := newPayload(userID, kind, m.now(), m.lifetimes)
	if err != nil {
		return "", nil, err
	}

	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.Hex(),
			IssuedAt:  jwt.NewNumericDate(payload.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(payload.ExpiresAt),
		},
		Kind: kind.String(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign jwt: %w", err)
	}
	return token, payload, nil
}

func (m *JWTMaker) VerifyToken(token string) (*Payload, error) {
	claims := &jwtClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		// The parser checks the signature before the claims, so an
		// expiry error implies an authentic token.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := models.ParseID(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	kind, err := parseKind(claims.Kind)
	if err != nil {
		return nil, err
	}

	payload := &Payload{UserID: userID, Kind: kind, ExpiresAt: claims.ExpiresAt.Time}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	return payload, nil
}
