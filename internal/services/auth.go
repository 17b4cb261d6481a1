package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-todo-lists/internal/jwt"
	"github.com/sbilibin2017/gw-todo-lists/internal/logger"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
	"github.com/sbilibin2017/gw-todo-lists/internal/password"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUnauthenticated    = errors.New("could not validate credentials")
	ErrInactiveUser       = errors.New("inactive user")
)

// UserAuthReader defines the user operations authentication needs.
type UserAuthReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

// TokenManager issues and decodes bearer tokens.
type TokenManager interface {
	Generate(ctx context.Context, subject string) (string, error)
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
	Expiration() time.Duration
}

// AuthService handles login and token authentication.
type AuthService struct {
	users  UserAuthReader
	tokens TokenManager
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserAuthReader, tokens TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login checks the credentials and returns a bearer token for the user.
func (svc *AuthService) Login(ctx context.Context, email, pw string) (*models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "error", err)
		return nil, err
	}
	if user == nil || !password.Verify(pw, user.HashedPassword) {
		log.Infow("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	if err := svc.users.UpdateLastLogin(ctx, user.ID); err != nil {
		log.Errorw("failed to update last login", "user_id", user.ID, "error", err)
		return nil, err
	}

	token, err := svc.tokens.Generate(ctx, user.Email)
	if err != nil {
		log.Errorw("failed to generate JWT", "error", err)
		return nil, err
	}

	return &models.Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(svc.tokens.Expiration().Seconds()),
	}, nil
}

// Authenticate resolves a bearer token to an active user. Malformed and
// expired tokens are treated alike.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	log := logger.FromContext(ctx)

	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		log.Infow("token rejected", "error", err)
		return nil, ErrUnauthenticated
	}

	user, err := svc.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		log.Errorw("failed to get user", "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	if err := svc.users.UpdateLastLogin(ctx, user.ID); err != nil {
		log.Errorw("failed to update last login", "user_id", user.ID, "error", err)
		return nil, err
	}
	return user, nil
}
