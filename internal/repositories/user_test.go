package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	lastLogin := time.Date(2024, 7, 19, 17, 19, 10, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "password_hash", "last_login_at"}).
		AddRow(int64(1), "tester_1", "$2a$08$hash", lastLogin)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, password_hash, last_login_at")).
		WithArgs("tester_1").
		WillReturnRows(rows)

	account, err := repo.GetByName(context.Background(), "tester_1")
	assert.NoError(t, err)
	assert.NotNil(t, account)
	assert.Equal(t, int64(1), account.ID)
	assert.Equal(t, "tester_1", account.Name)
	assert.NotNil(t, account.LastLoginAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByName_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, password_hash, last_login_at")).
		WithArgs("nouser").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "password_hash", "last_login_at"}))

	account, err := repo.GetByName(context.Background(), "nouser")
	assert.NoError(t, err)
	assert.Nil(t, account)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByName_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, password_hash, last_login_at")).
		WithArgs("tester_1").
		WillReturnError(errors.New("connection reset"))

	account, err := repo.GetByName(context.Background(), "tester_1")
	assert.Error(t, err)
	assert.Nil(t, account)
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts (name, password_hash)")).
		WithArgs("tester_1", "$2a$08$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	id, err := repo.Save(context.Background(), "tester_1", "$2a$08$hash")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_DuplicateName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts (name, password_hash)")).
		WithArgs("tester_1", "$2a$08$hash").
		WillReturnError(errors.New(`duplicate key value violates unique constraint "accounts_name_key"`))

	_, err := repo.Save(context.Background(), "tester_1", "$2a$08$hash")
	assert.Error(t, err)
}

func TestUserWriteRepository_UpdateLastLogin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	at := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts")).
		WithArgs(at, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateLastLogin(context.Background(), 5, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
