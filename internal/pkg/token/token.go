// Package token issues and verifies the signed access tokens the API hands
// out after a social login.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jmk307/hellmap-api/internal/pkg/env"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the payload of an access token. Subject carries the numeric
// user id, Nickname is included so clients can greet without a lookup.
type Claims struct {
	Nickname string `json:"nickname"`
	jwt.RegisteredClaims
}

// Manager signs and parses access tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManagerFromEnv reads JWT_SECRET and JWT_TTL_HOURS. An empty secret is a
// config error the caller must treat as fatal, so it is returned, not logged.
func NewManagerFromEnv() (*Manager, error) {
	secret := env.GetEnv("JWT_SECRET", "")
	if secret == "" {
		return nil, errors.New("token: JWT_SECRET is not set")
	}
	ttlHours, err := strconv.Atoi(env.GetEnv("JWT_TTL_HOURS", "72"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 72
	}
	return NewManager([]byte(secret), time.Duration(ttlHours)*time.Hour), nil
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

var (
	defaultManager *Manager
	defaultOnce    sync.Once
)

// Default returns the process-wide manager built from the environment.
// Panics when JWT_SECRET is missing; main calls this once at boot so a
// misconfigured deployment fails immediately, not on the first login.
func Default() *Manager {
	defaultOnce.Do(func() {
		m, err := NewManagerFromEnv()
		if err != nil {
			panic(err)
		}
		defaultManager = m
	})
	return defaultManager
}

// Issue creates a signed token for the given user.
func (m *Manager) Issue(userID uint, nickname string) (string, error) {
	now := time.Now()
	claims := Claims{
		Nickname: nickname,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies the signature and expiry and returns the claims. All
// failures collapse into ErrInvalidToken so handlers answer uniformly.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// UserID decodes the numeric subject of parsed claims.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
