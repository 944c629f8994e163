package token

import (
	"errors"

	"QR-Code-Tracker/models"
)

type State uint8

const (
	StateInvalid State = iota
	StateValid
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateValid:
		return "valid"
	case StateExpired:
		return "expired"
	default:
		return "invalid"
	}
}

// Inspect classifies a token. A token with a bad signature is invalid,
// never expired.
func Inspect(m Maker, token string) State {
	_, err := m.VerifyToken(token)
	switch {
	case err == nil:
		return StateValid
	case errors.Is(err, ErrExpiredToken):
		return StateExpired
	default:
		return StateInvalid
	}
}

func IsExpired(m Maker, token string) bool {
	return Inspect(m, token) == StateExpired
}

// Validate returns the subject of any live token regardless of its kind.
func Validate(m Maker, token string) (models.ID, error) {
	payload, err := m.VerifyToken(token)
	if err != nil {
		return models.ID{}, err
	}
	return payload.UserID, nil
}

// ValidateKind is Validate plus a check that the token is of the expected kind.
func ValidateKind(m Maker, token string, kind Kind) (models.ID, error) {
	payload, err := m.VerifyToken(token)
	if err != nil {
		return models.ID{}, err
	}
	if payload.Kind != kind {
		return models.ID{}, ErrWrongKind
	}
	return payload.UserID, nil
}
