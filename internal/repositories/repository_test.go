package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func userRow(id int64, email string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "email", "full_name", "hashed_password", "is_active", "is_superuser", "created_at", "updated_at", "last_login"}).
		AddRow(id, email, "Alice", "hash", true, false, now, now, nil)
}

func listRow(id, ownerID int64, title string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "title", "description", "owner_id", "is_archived", "created_at", "updated_at"}).
		AddRow(id, title, nil, ownerID, false, now, now)
}

func itemRow(id, listID int64, completed bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "list_id", "content", "is_completed", "order", "created_at", "updated_at"}).
		AddRow(id, listID, "Milk", completed, 0, now, now)
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice@example.com", "Alice", "hash", true, false).
		WillReturnRows(userRow(1, "alice@example.com"))

	user, err := repo.Create(context.Background(), models.UserCreate{Email: "alice@example.com", FullName: "Alice", IsActive: true}, "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Nil(t, user.LastLogin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	user, err := repo.Create(context.Background(), models.UserCreate{Email: "alice@example.com", FullName: "Alice"}, "hash")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepository_Create_TakenEmailInTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	repo := NewUserRepository(db, func(context.Context) *sqlx.Tx { return tx })

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (email) DO NOTHING RETURNING")).
		WithArgs("alice@example.com", "Alice", "hash", true, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	user, err := repo.Create(context.Background(), models.UserCreate{Email: "alice@example.com", FullName: "Alice", IsActive: true}, "hash")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrDuplicate)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_TakenEmailKeepsTransactionUsable(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	repo := NewUserRepository(db, func(context.Context) *sqlx.Tx { return tx })
	email := "bob@example.com"

	mock.ExpectExec(regexp.QuoteMeta("SAVEPOINT repository_stmt")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET updated_at = NOW(), email = $1 WHERE id = $2 RETURNING")).
		WithArgs(email, int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectExec(regexp.QuoteMeta("ROLLBACK TO SAVEPOINT repository_stmt")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	user, err := repo.Update(context.Background(), 1, models.UserUpdate{Email: &email})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrDuplicate)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_ReleasesSavepoint(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	repo := NewUserRepository(db, func(context.Context) *sqlx.Tx { return tx })
	name := "Alice Cooper"

	mock.ExpectExec(regexp.QuoteMeta("SAVEPOINT repository_stmt")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET updated_at = NOW(), full_name = $1 WHERE id = $2 RETURNING")).
		WithArgs(name, int64(1)).
		WillReturnRows(userRow(1, "alice@example.com"))
	mock.ExpectExec(regexp.QuoteMeta("RELEASE SAVEPOINT repository_stmt")).WillReturnResult(sqlmock.NewResult(0, 0))

	user, err := repo.Update(context.Background(), 1, models.UserUpdate{FullName: &name})
	require.NoError(t, err)
	assert.NotNil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(int64(7)).
			WillReturnRows(userRow(7, "bob@example.com"))

		user, err := repo.GetByID(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "bob@example.com", user.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(int64(8)).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByID(ctx, 8)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("DatabaseError", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(int64(9)).
			WillReturnError(errors.New("connection reset"))

		user, err := repo.GetByID(ctx, 9)
		assert.ErrorContains(t, err, "connection reset")
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List_FiltersAndPaginates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)
	active := true

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE (is_active = $1)")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE (is_active = $1) ORDER BY created_at DESC, id DESC LIMIT 2 OFFSET 1")).
		WithArgs(true).
		WillReturnRows(userRow(2, "b@example.com").AddRow(1, "a@example.com", "A", "hash", true, false, time.Now(), time.Now(), nil))

	users, total, err := repo.List(context.Background(), models.UserFilter{Skip: 1, Limit: 2, IsActive: &active})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_OnlySuppliedFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)
	name := "Alice Cooper"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET updated_at = NOW(), full_name = $1 WHERE id = $2 RETURNING")).
		WithArgs(name, int64(1)).
		WillReturnRows(userRow(1, "alice@example.com"))

	user, err := repo.Update(context.Background(), 1, models.UserUpdate{FullName: &name})
	require.NoError(t, err)
	assert.NotNil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, 2)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UsesRequestTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewUserRepository(db, func(context.Context) *sqlx.Tx { return tx })
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET last_login = NOW() WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateLastLogin(context.Background(), 4))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRepository_GetByIDAndOwner_ScopedInSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM lists WHERE id = $1 AND owner_id = $2")).
		WithArgs(int64(10), int64(2)).
		WillReturnError(sql.ErrNoRows)

	list, err := repo.GetByIDAndOwner(context.Background(), 10, 2)
	assert.NoError(t, err)
	assert.Nil(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRepository_ListByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListRepository(db, nil)
	archived := false

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM lists WHERE (owner_id = $1 AND is_archived = $2)")).
		WithArgs(int64(1), false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC LIMIT 20 OFFSET 0")).
		WithArgs(int64(1), false).
		WillReturnRows(listRow(25, 1, "Latest"))

	lists, total, err := repo.ListByOwner(context.Background(), models.ListFilter{OwnerID: 1, Limit: 20, IsArchived: &archived})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, lists, 1)
	assert.Equal(t, "Latest", lists[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRepository_SetArchived(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE lists SET is_archived = $1, updated_at = NOW() WHERE id = $2 AND owner_id = $3 RETURNING")).
		WithArgs(true, int64(3), int64(1)).
		WillReturnRows(listRow(3, 1, "Groceries"))

	list, err := repo.SetArchived(context.Background(), 3, 1, true)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRepository_DeleteByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM lists WHERE id = $1 AND owner_id = $2")).
		WithArgs(int64(3), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.DeleteByOwner(context.Background(), 3, 2)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListItemRepository_Toggle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListItemRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SET is_completed = NOT is_completed")).
		WithArgs(int64(5)).
		WillReturnRows(itemRow(5, 1, true))

	item, err := repo.Toggle(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.True(t, item.IsCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListItemRepository_Update_QuotesOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListItemRepository(db, nil)
	order := 3

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE list_items SET updated_at = NOW(), "order" = $1 WHERE id = $2`)).
		WithArgs(3, int64(5)).
		WillReturnError(sql.ErrNoRows)

	item, err := repo.Update(context.Background(), 5, models.ListItemUpdate{Order: &order})
	assert.NoError(t, err)
	assert.Nil(t, item)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListItemRepository_ListByList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListItemRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE list_id = $1 ORDER BY "order" ASC, id ASC`)).
		WithArgs(int64(1)).
		WillReturnRows(itemRow(1, 1, false).AddRow(2, 1, "Eggs", false, 1, time.Now(), time.Now()))

	items, err := repo.ListByList(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
