package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/inventory-tracker/internal/logger"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
)

// UserReadRepository handles account read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByName returns the account whose name matches byte-for-byte, or nil if none exists.
func (r *UserReadRepository) GetByName(ctx context.Context, name string) (*models.AccountDB, error) {
	const query = `
		SELECT id, name, password_hash, last_login_at
		FROM accounts
		WHERE name = $1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, name)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// UserWriteRepository handles account write operations
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new account and returns its assigned ID.
func (r *UserWriteRepository) Save(ctx context.Context, name, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO accounts (name, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, name, passwordHash)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"result", id,
		"error", err,
	)

	return id, err
}

// UpdateLastLogin stamps the account's last successful login time.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	const query = `
		UPDATE accounts
		SET last_login_at = $1
		WHERE id = $2
	`

	res, err := r.db.ExecContext(ctx, query, at, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{at, id},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
