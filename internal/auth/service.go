// Package auth implements the login handshake and the bearer-token gate for
// the admin dashboard.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/elishalema/portfolio-service/internal/account"
)

// PasswordHasher defines minimal hashing interface (abstract so we can swap to argon2 later).
type PasswordHasher interface {
	Hash(pw string) (string, error)
	Verify(hash, pw string) bool
}

// BcryptHasher implementation.
type BcryptHasher struct{ Cost int }

func (b BcryptHasher) Hash(pw string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (b BcryptHasher) Verify(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("token is not valid")
)

// Service verifies admin credentials and mints/validates bearer tokens.
// Tokens are the sole trust anchor once issued: there is no revocation list,
// a leaked token stays valid until its natural expiry.
type Service struct {
	accounts account.Store
	hasher   PasswordHasher
	secret   []byte
	tokenTTL time.Duration
}

func NewService(accounts account.Store, hasher PasswordHasher, secret []byte) *Service {
	if hasher == nil {
		hasher = BcryptHasher{Cost: 10}
	}
	return &Service{accounts: accounts, hasher: hasher, secret: secret, tokenTTL: time.Hour}
}

// Login authenticates the admin and returns a signed token. Unknown username
// and wrong password produce the same error so the response never reveals
// whether the username exists.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	a, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !s.hasher.Verify(a.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return s.issueToken(a.ID)
}

// issueToken creates a signed HS256 JWT for the given subject.
func (s *Service) issueToken(accountID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// VerifyToken validates signature and expiry and returns the subject.
// It deliberately does not re-check that the subject still exists in the
// store; the token itself is trusted for its lifetime.
func (s *Service) VerifyToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
