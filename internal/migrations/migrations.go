// Package migrations creates the database schema and seeds the initial accounts.
package migrations

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-lists/internal/logger"
	"github.com/sbilibin2017/gw-todo-lists/internal/password"
)

//go:embed schema.sql
var schema string

// Statements returns the schema split into individual statements.
func Statements() []string {
	var out []string
	for _, stmt := range strings.Split(schema, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// Apply creates every table and index that does not exist yet.
func Apply(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range Statements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %q: %w", firstLine(stmt), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	logger.Log.Infow("database schema applied", "statements", len(Statements()))
	return nil
}

// SeedAccount describes one account created by Seed.
type SeedAccount struct {
	Email       string
	FullName    string
	Password    string // empty stores an unusable credential
	IsSuperuser bool
}

// DefaultAccounts returns the admin and test accounts with the given passwords.
func DefaultAccounts(adminPassword, userPassword string) []SeedAccount {
	return []SeedAccount{
		{Email: "admin@example.com", FullName: "Admin User", Password: adminPassword, IsSuperuser: true},
		{Email: "test@example.com", FullName: "Test User", Password: userPassword},
	}
}

// Seed inserts accounts unless the first one already exists. It reports
// whether anything was inserted.
func Seed(ctx context.Context, db *sqlx.DB, accounts []SeedAccount) (bool, error) {
	if len(accounts) == 0 {
		return false, nil
	}

	var exists bool
	if err := db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, accounts[0].Email); err != nil {
		return false, fmt.Errorf("check seed account: %w", err)
	}
	if exists {
		logger.Log.Infow("seed accounts already present, skipping", "email", accounts[0].Email)
		return false, nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO users (email, full_name, hashed_password, is_active, is_superuser)
		VALUES ($1, $2, $3, TRUE, $4)
	`
	for _, acc := range accounts {
		hashed := password.Unusable
		if acc.Password != "" {
			if hashed, err = password.Hash(acc.Password); err != nil {
				return false, err
			}
		}
		if _, err := tx.ExecContext(ctx, query, acc.Email, acc.FullName, hashed, acc.IsSuperuser); err != nil {
			return false, fmt.Errorf("seed %s: %w", acc.Email, err)
		}
		logger.Log.Infow("seeded account", "email", acc.Email, "superuser", acc.IsSuperuser)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}
	return true, nil
}

func firstLine(stmt string) string {
	line, _, _ := strings.Cut(stmt, "\n")
	return strings.TrimSpace(line)
}
