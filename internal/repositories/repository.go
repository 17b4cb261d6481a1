package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-lists/internal/logger"
)

// ErrDuplicate is returned when an insert or update violates a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

const (
	uniqueViolation = "23505"
	savepointName   = "repository_stmt"
)

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type base struct {
	db       *sqlx.DB
	txGetter TxGetter
}

// executor prefers the request transaction over the pool.
func (b base) executor(ctx context.Context) sqlx.ExtContext {
	if b.txGetter != nil {
		if tx := b.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return b.db
}

// savepoint runs fn behind a savepoint when a request transaction is active.
// A failing statement is rolled back to it, so the transaction can still commit.
func (b base) savepoint(ctx context.Context, fn func() error) error {
	var tx *sqlx.Tx
	if b.txGetter != nil {
		tx = b.txGetter(ctx)
	}
	if tx == nil {
		return fn()
	}

	if _, err := tx.ExecContext(ctx, "SAVEPOINT "+savepointName); err != nil {
		return fmt.Errorf("create savepoint: %w", err)
	}
	if err := fn(); err != nil {
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepointName); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback to savepoint: %w", rbErr))
		}
		return err
	}
	if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+savepointName); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}

// get scans one row into dest. A missing row is reported as found=false.
func (b base) get(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	err := sqlx.GetContext(ctx, b.executor(ctx), dest, query, args...)
	logQuery(query, args, err)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, mapError(err)
	}
	return true, nil
}

func (b base) selectRows(ctx context.Context, dest any, query string, args ...any) error {
	err := sqlx.SelectContext(ctx, b.executor(ctx), dest, query, args...)
	logQuery(query, args, err)
	return mapError(err)
}

func (b base) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := b.executor(ctx).ExecContext(ctx, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return 0, mapError(err)
	}
	return res.RowsAffected()
}

func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}

// Log with query in single line
func logQuery(query string, args []any, err error) {
	logger.Log.Debugw(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
}
