package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-todo-lists/internal/logger"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
	"github.com/sbilibin2017/gw-todo-lists/internal/password"
	"github.com/sbilibin2017/gw-todo-lists/internal/repositories"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=services

var (
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	ErrUserNotFound      = errors.New("user not found")
)

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, u models.UserCreate, hashedPassword string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.User, int64, error)
	Update(ctx context.Context, id int64, u models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

// UserService manages user accounts.
type UserService struct {
	repo   UserRepository
	events EventPublisher
}

// NewUserService creates a new UserService. events may be nil.
func NewUserService(repo UserRepository, events EventPublisher) *UserService {
	return &UserService{repo: repo, events: events}
}

// Create registers a new user. Without a password the account cannot log in.
func (s *UserService) Create(ctx context.Context, in models.UserCreate) (*models.User, error) {
	log := logger.FromContext(ctx)

	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		log.Errorw("failed to check user exists", "email", in.Email, "error", err)
		return nil, err
	}
	if existing != nil {
		log.Infow("user already exists", "email", in.Email)
		return nil, ErrUserAlreadyExists
	}

	hashed := password.Unusable
	if in.Password != "" {
		if hashed, err = password.Hash(in.Password); err != nil {
			log.Errorw("failed to hash password", "error", err)
			return nil, err
		}
	}

	user, err := s.repo.Create(ctx, in, hashed)
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		log.Errorw("failed to save user", "email", in.Email, "error", err)
		return nil, err
	}

	emit(ctx, s.events, models.EventUserCreated, 0, user.ID)
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "user_id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns a page of users, optionally only active or inactive ones.
func (s *UserService) List(ctx context.Context, skip, limit uint64, isActive *bool) (*models.UserPage, error) {
	users, total, err := s.repo.List(ctx, models.UserFilter{Skip: skip, Limit: limit, IsActive: isActive})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list users", "skip", skip, "limit", limit, "error", err)
		return nil, err
	}
	return &models.UserPage{Total: total, Skip: skip, Limit: limit, Items: users}, nil
}

// Update applies the supplied fields. Moving to an email held by another
// user is rejected.
func (s *UserService) Update(ctx context.Context, id int64, in models.UserUpdate) (*models.User, error) {
	log := logger.FromContext(ctx)

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != current.Email {
		other, err := s.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			log.Errorw("failed to check email", "email", *in.Email, "error", err)
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, ErrUserAlreadyExists
		}
	}

	user, err := s.repo.Update(ctx, id, in)
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		log.Errorw("failed to update user", "user_id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	emit(ctx, s.events, models.EventUserUpdated, 0, id)
	return user, nil
}

// Delete removes the user together with every list and item they own.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete user", "user_id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	emit(ctx, s.events, models.EventUserDeleted, 0, id)
	return nil
}
