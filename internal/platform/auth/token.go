// Package auth issues and verifies the mock session tokens used by the
// demo login endpoint. Tokens are real HS256 JWTs so clients exercise the
// same wire format a production identity provider would hand out, but the
// subject is always a synthetic demo user.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("auth: invalid token")
	ErrExpiredToken = errors.New("auth: token expired")
)

// Claims carries the session identity embedded in issued tokens.
type Claims struct {
	jwt.RegisteredClaims
	Email  string `json:"email"`
	Locale string `json:"locale,omitempty"`
}

// TokenIssuerDeps configures NewTokenIssuer.
type TokenIssuerDeps struct {
	// SigningSecret signs and verifies session tokens. Required.
	SigningSecret string
	// SessionTTL bounds token lifetime. Required and positive.
	SessionTTL time.Duration
	// Clock supplies the current time. Defaults to time.Now.
	Clock func() time.Time
}

// TokenIssuer mints and verifies session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  func() time.Time
}

func NewTokenIssuer(deps TokenIssuerDeps) (*TokenIssuer, error) {
	if strings.TrimSpace(deps.SigningSecret) == "" {
		return nil, errors.New("auth: signing secret is required")
	}
	if deps.SessionTTL <= 0 {
		return nil, errors.New("auth: session ttl must be positive")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &TokenIssuer{
		secret: []byte(deps.SigningSecret),
		ttl:    deps.SessionTTL,
		clock:  clock,
	}, nil
}

// Issue returns a signed session token for the given subject and email.
func (t *TokenIssuer) Issue(subject, email, locale string) (string, time.Time, error) {
	now := t.clock()
	expiresAt := now.Add(t.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "himalayan-sound",
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email:  email,
		Locale: locale,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify parses a session token and returns its claims.
func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.clock))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
