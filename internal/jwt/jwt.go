package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiration is used when no expiration option is given.
const DefaultExpiration = 30 * time.Minute

var (
	// ErrInvalidToken is returned for every token that fails to decode, verify or is expired.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingToken is returned when the request carries no bearer token.
	ErrMissingToken = errors.New("authorization header missing")
)

// Claims is the decoded content of a valid token.
type Claims struct {
	Subject   string    // user email
	IssuedAt  time.Time // issue time
	ExpiresAt time.Time // expiry time
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	secretKey []byte
	exp       time.Duration
	now       func() time.Time
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) { j.secretKey = []byte(key) }
}

// WithExpiration sets the default token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.exp = exp }
}

// WithClock replaces time.Now, used for issuing and validating.
func WithClock(now func() time.Time) Opt {
	return func(j *JWT) { j.now = now }
}

// New creates a new JWT instance.
func New(opts ...Opt) *JWT {
	j := &JWT{
		exp: DefaultExpiration,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Expiration returns the default token lifetime.
func (j *JWT) Expiration() time.Duration {
	return j.exp
}

// Generate creates a token for subject with the default lifetime.
func (j *JWT) Generate(ctx context.Context, subject string) (string, error) {
	return j.GenerateWithTTL(ctx, subject, 0)
}

// GenerateWithTTL creates a token for subject that expires after ttl.
// A non-positive ttl falls back to the default lifetime.
func (j *JWT) GenerateWithTTL(ctx context.Context, subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = j.exp
	}
	now := j.now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GetClaims parses and validates tokenString. Any failure, including expiry,
// yields an error wrapping ErrInvalidToken.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	var claims jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(token *jwt.Token) (interface{}, error) {
			return j.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	out := &Claims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// Validate reports whether tokenString is a valid, unexpired token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
