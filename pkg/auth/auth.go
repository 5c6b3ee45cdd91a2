// Package auth resolves request tokens to principals. Tokens are HS256 JWTs with the principal id
// in the subject claim and its roles in the "roles" claim.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/umputun/manifold/pkg/domain"
)

// ErrNoToken is returned when a request carries no token
var ErrNoToken = errors.New("no token")

// Claims of a manifold token
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies tokens
type Tokens struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewTokens makes Tokens signing with secret, ttl of issued tokens defaults to 24h
func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("empty token secret")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, issuer: "manifold"}, nil
}

// Issue makes a signed token for the principal
func (t *Tokens) Issue(p domain.Principal) (string, error) {
	if p.ID == "" {
		return "", errors.New("empty principal id")
	}
	now := time.Now()
	claims := &Claims{
		Roles: p.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			Issuer:    t.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the token and returns its principal
func (t *Tokens) Parse(token string) (domain.Principal, error) {
	if token == "" {
		return domain.Principal{}, ErrNoToken
	}
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tk.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(t.issuer))
	if err != nil {
		return domain.Principal{}, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return domain.Principal{}, errors.New("invalid token claims")
	}
	return domain.Principal{ID: claims.Subject, Roles: claims.Roles}, nil
}

// RequestContext wraps a raw token into a request envelope resolving the principal once, on first use
func (t *Tokens) RequestContext(token string) domain.RequestContext {
	return &bearer{token: token, tokens: t}
}

type bearer struct {
	token  string
	tokens *Tokens

	once      sync.Once
	principal domain.Principal
	err       error
}

func (b *bearer) RequestToken() string { return b.token }

func (b *bearer) Principal(context.Context) (domain.Principal, error) {
	b.once.Do(func() {
		b.principal, b.err = b.tokens.Parse(b.token)
	})
	return b.principal, b.err
}
