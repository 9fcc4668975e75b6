package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	TypeAccess  TokenType = "access"
	TypeRefresh TokenType = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongType    = errors.New("unexpected token type")
)

// Claims are the claims carried by session tokens.
type Claims struct {
	SessionID string    `json:"sid"`
	Email     string    `json:"email"`
	Domain    string    `json:"domain"`
	Type      TokenType `json:"typ"`
	gojwt.RegisteredClaims
}

// Manager signs and verifies HS256 session tokens.
type Manager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// New creates a Manager. secret must not be empty.
func New(secret, issuer string) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("jwt: secret is required")
	}
	return &Manager{secret: []byte(secret), issuer: issuer, now: time.Now}, nil
}

// Sign issues a token of the given type that expires after ttl. claims.ID
// is kept as the token id.
func (m *Manager) Sign(claims Claims, typ TokenType, ttl time.Duration) (string, error) {
	now := m.now()
	claims.Type = typ
	claims.RegisteredClaims = gojwt.RegisteredClaims{
		ID:        claims.ID,
		Issuer:    m.issuer,
		Subject:   claims.Email,
		IssuedAt:  gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: sign: %w", err)
	}
	return signed, nil
}

// Verify parses tokenStr and checks its signature, expiry and type.
func (m *Manager) Verify(tokenStr string, typ TokenType) (*Claims, error) {
	t, err := gojwt.ParseWithClaims(tokenStr, &Claims{}, func(t *gojwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != typ {
		return nil, ErrWrongType
	}
	return claims, nil
}
