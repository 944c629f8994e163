// Package token issues and verifies the stateless bearer tokens used for
// authentication. Two token kinds exist, each with its own lifetime.
package token

import (
	"errors"
	"fmt"
	"time"

	"QR-Code-Tracker/models"
)

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
	ErrWrongKind    = fmt.Errorf("%w: unexpected token kind", ErrInvalidToken)
)

// Kind is closed: only Access and Refresh exist.
type Kind uint8

const (
	Access Kind = iota + 1
	Refresh
)

func (k Kind) String() string {
	switch k {
	case Access:
		return "access"
	case Refresh:
		return "refresh"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

func (k Kind) Valid() bool {
	return k == Access || k == Refresh
}

func parseKind(s string) (Kind, error) {
	switch s {
	case "access":
		return Access, nil
	case "refresh":
		return Refresh, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidToken, s)
	}
}

const (
	DefaultAccessTTL  = 3600 * time.Second
	DefaultRefreshTTL = 86400 * time.Second
)

// Lifetimes binds one TTL to each Kind.
type Lifetimes struct {
	Access  time.Duration
	Refresh time.Duration
}

func DefaultLifetimes() Lifetimes {
	return Lifetimes{Access: DefaultAccessTTL, Refresh: DefaultRefreshTTL}
}

func (l Lifetimes) For(k Kind) time.Duration {
	if k == Refresh {
		return l.Refresh
	}
	return l.Access
}

// Payload is what a token carries.
type Payload struct {
	UserID    models.ID `json:"user_id"`
	Kind      Kind      `json:"kind"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Maker creates and verifies tokens. VerifyToken returns ErrExpiredToken
// only for tokens whose signature checked out; every other failure is
// ErrInvalidToken.
type Maker interface {
	CreateToken(userID models.ID, kind Kind) (string, *Payload, error)
	VerifyToken(token string) (*Payload, error)
}

type options struct {
	now func() time.Time
}

type Option func(*options)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newPayload(userID models.ID, kind Kind, now time.Time, lifetimes Lifetimes) (*Payload, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("cannot issue token of %s", kind)
	}
	if userID.IsZero() {
		return nil, errors.New("cannot issue token without a subject")
	}
	return &Payload{
		UserID:    userID,
		Kind:      kind,
		IssuedAt:  now,
		ExpiresAt: now.Add(lifetimes.For(kind)),
	}, nil
}
