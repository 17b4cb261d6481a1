package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
)

const listColumns = "id, title, description, owner_id, is_archived, created_at, updated_at"

// ListRepository reads and writes rows of the lists table. Every lookup
// after creation is scoped to the owner.
type ListRepository struct {
	base
}

func NewListRepository(db *sqlx.DB, txGetter TxGetter) *ListRepository {
	return &ListRepository{base{db: db, txGetter: txGetter}}
}

func (r *ListRepository) Create(ctx context.Context, ownerID int64, l models.ListCreate) (*models.List, error) {
	query := `
		INSERT INTO lists (title, description, owner_id, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + listColumns

	var list models.List
	if _, err := r.get(ctx, &list, query, l.Title, l.Description, ownerID, l.IsArchived); err != nil {
		return nil, fmt.Errorf("insert list: %w", err)
	}
	return &list, nil
}

// GetByIDAndOwner returns nil when the list is absent or owned by someone else.
func (r *ListRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.List, error) {
	query := `SELECT ` + listColumns + ` FROM lists WHERE id = $1 AND owner_id = $2`

	var list models.List
	found, err := r.get(ctx, &list, query, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select list: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &list, nil
}

// ListByOwner returns one page of the owner's lists, newest first, and the total.
func (r *ListRepository) ListByOwner(ctx context.Context, filter models.ListFilter) ([]models.List, int64, error) {
	where := squirrel.And{squirrel.Eq{"owner_id": filter.OwnerID}}
	if filter.IsArchived != nil {
		where = append(where, squirrel.Eq{"is_archived": *filter.IsArchived})
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("lists").Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if _, err := r.get(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count lists: %w", err)
	}

	query, args, err := psql.Select(listColumns).
		From("lists").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		ToSql()
	if err != nil {
		return nil, 0, err
	}
	lists := []models.List{}
	if err := r.selectRows(ctx, &lists, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select lists: %w", err)
	}
	return lists, total, nil
}

// UpdateByOwner applies the non-nil fields of l. It returns nil when the
// list is absent or owned by someone else.
func (r *ListRepository) UpdateByOwner(ctx context.Context, id, ownerID int64, l models.ListUpdate) (*models.List, error) {
	b := psql.Update("lists").Set("updated_at", squirrel.Expr("NOW()"))
	if l.Title != nil {
		b = b.Set("title", *l.Title)
	}
	if l.Description != nil {
		b = b.Set("description", *l.Description)
	}
	if l.IsArchived != nil {
		b = b.Set("is_archived", *l.IsArchived)
	}
	return r.updateOne(ctx, b, id, ownerID)
}

// SetArchived sets the archive flag unconditionally.
func (r *ListRepository) SetArchived(ctx context.Context, id, ownerID int64, archived bool) (*models.List, error) {
	b := psql.Update("lists").
		Set("is_archived", archived).
		Set("updated_at", squirrel.Expr("NOW()"))
	return r.updateOne(ctx, b, id, ownerID)
}

func (r *ListRepository) updateOne(ctx context.Context, b squirrel.UpdateBuilder, id, ownerID int64) (*models.List, error) {
	query, args, err := b.
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + listColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	var list models.List
	found, err := r.get(ctx, &list, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update list: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &list, nil
}

// DeleteByOwner removes the list and, through the foreign key, its items.
func (r *ListRepository) DeleteByOwner(ctx context.Context, id, ownerID int64) (bool, error) {
	n, err := r.exec(ctx, `DELETE FROM lists WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete list: %w", err)
	}
	return n > 0, nil
}
