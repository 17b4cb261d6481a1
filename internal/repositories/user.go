package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
)

const userColumns = "id, email, full_name, hashed_password, is_active, is_superuser, created_at, updated_at, last_login"

// UserRepository reads and writes rows of the users table.
type UserRepository struct {
	base
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{base{db: db, txGetter: txGetter}}
}

// Create inserts a user and returns the stored row. A taken email yields
// ErrDuplicate without aborting the surrounding transaction.
func (r *UserRepository) Create(ctx context.Context, u models.UserCreate, hashedPassword string) (*models.User, error) {
	query := `
		INSERT INTO users (email, full_name, hashed_password, is_active, is_superuser, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
		RETURNING ` + userColumns

	var user models.User
	found, err := r.get(ctx, &user, query, u.Email, u.FullName, hashedPassword, u.IsActive, u.IsSuperuser)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert user: %w", ErrDuplicate)
	}
	return &user, nil
}

// GetByID returns nil when no user has the id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmail returns nil when no user has the email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	var user models.User
	found, err := r.get(ctx, &user, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// List returns one page of users, newest first, and the total matching count.
func (r *UserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, int64, error) {
	where := squirrel.And{}
	if filter.IsActive != nil {
		where = append(where, squirrel.Eq{"is_active": *filter.IsActive})
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("users").Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if _, err := r.get(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query, args, err := psql.Select(userColumns).
		From("users").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		ToSql()
	if err != nil {
		return nil, 0, err
	}
	users := []models.User{}
	if err := r.selectRows(ctx, &users, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select users: %w", err)
	}
	return users, total, nil
}

// Update applies the non-nil fields of u. It returns nil when the user is absent.
func (r *UserRepository) Update(ctx context.Context, id int64, u models.UserUpdate) (*models.User, error) {
	b := psql.Update("users").Set("updated_at", squirrel.Expr("NOW()"))
	if u.Email != nil {
		b = b.Set("email", *u.Email)
	}
	if u.FullName != nil {
		b = b.Set("full_name", *u.FullName)
	}
	if u.IsActive != nil {
		b = b.Set("is_active", *u.IsActive)
	}

	query, args, err := b.Where(squirrel.Eq{"id": id}).Suffix("RETURNING " + userColumns).ToSql()
	if err != nil {
		return nil, err
	}
	var user models.User
	var found bool
	err = r.savepoint(ctx, func() error {
		var getErr error
		found, getErr = r.get(ctx, &user, query, args...)
		return getErr
	})
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// Delete removes the user; lists and items go with it through the foreign keys.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return n > 0, nil
}

// UpdateLastLogin stamps the user's last successful authentication.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	if _, err := r.exec(ctx, `UPDATE users SET last_login = NOW() WHERE id = $1`, id); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
