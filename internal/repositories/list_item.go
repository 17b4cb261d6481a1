package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
)

const itemColumns = `id, list_id, content, is_completed, "order", created_at, updated_at`

// ListItemRepository reads and writes rows of the list_items table. It does
// not check list ownership; callers do.
type ListItemRepository struct {
	base
}

func NewListItemRepository(db *sqlx.DB, txGetter TxGetter) *ListItemRepository {
	return &ListItemRepository{base{db: db, txGetter: txGetter}}
}

func (r *ListItemRepository) Create(ctx context.Context, listID int64, it models.ListItemCreate) (*models.ListItem, error) {
	query := `
		INSERT INTO list_items (list_id, content, is_completed, "order", created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + itemColumns

	var item models.ListItem
	if _, err := r.get(ctx, &item, query, listID, it.Content, it.IsCompleted, it.Order); err != nil {
		return nil, fmt.Errorf("insert list item: %w", err)
	}
	return &item, nil
}

// GetByID returns nil when no item has the id.
func (r *ListItemRepository) GetByID(ctx context.Context, id int64) (*models.ListItem, error) {
	query := `SELECT ` + itemColumns + ` FROM list_items WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// ListByList returns the list's items by position, ties broken by id.
func (r *ListItemRepository) ListByList(ctx context.Context, listID int64) ([]models.ListItem, error) {
	query := `SELECT ` + itemColumns + ` FROM list_items WHERE list_id = $1 ORDER BY "order" ASC, id ASC`

	items := []models.ListItem{}
	if err := r.selectRows(ctx, &items, query, listID); err != nil {
		return nil, fmt.Errorf("select list items: %w", err)
	}
	return items, nil
}

// Update applies the non-nil fields of it. It returns nil when the item is absent.
func (r *ListItemRepository) Update(ctx context.Context, id int64, it models.ListItemUpdate) (*models.ListItem, error) {
	b := psql.Update("list_items").Set("updated_at", squirrel.Expr("NOW()"))
	if it.Content != nil {
		b = b.Set("content", *it.Content)
	}
	if it.IsCompleted != nil {
		b = b.Set("is_completed", *it.IsCompleted)
	}
	if it.Order != nil {
		b = b.Set(`"order"`, *it.Order)
	}

	query, args, err := b.Where(squirrel.Eq{"id": id}).Suffix("RETURNING " + itemColumns).ToSql()
	if err != nil {
		return nil, err
	}
	return r.getOne(ctx, query, args...)
}

// Toggle flips is_completed in one statement. It returns nil when the item is absent.
func (r *ListItemRepository) Toggle(ctx context.Context, id int64) (*models.ListItem, error) {
	query := `
		UPDATE list_items
		SET is_completed = NOT is_completed, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + itemColumns
	return r.getOne(ctx, query, id)
}

func (r *ListItemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.exec(ctx, `DELETE FROM list_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete list item: %w", err)
	}
	return n > 0, nil
}

func (r *ListItemRepository) getOne(ctx context.Context, query string, args ...any) (*models.ListItem, error) {
	var item models.ListItem
	found, err := r.get(ctx, &item, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list item: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &item, nil
}
