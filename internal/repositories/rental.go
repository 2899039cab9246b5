package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/inventory-tracker/internal/logger"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
)

// RentalReadRepository handles rental read operations
type RentalReadRepository struct {
	db *sqlx.DB
}

func NewRentalReadRepository(db *sqlx.DB) *RentalReadRepository {
	return &RentalReadRepository{db: db}
}

// ListByProduct returns all rentals referencing the given serial number.
func (r *RentalReadRepository) ListByProduct(ctx context.Context, productSN string) ([]models.RentalDB, error) {
	const query = `
		SELECT rental_id, product_sn, start_date, transaction_type, end_date, qty, description
		FROM rentals
		WHERE product_sn = $1
	`

	var rentals []models.RentalDB
	err := r.db.SelectContext(ctx, &rentals, query, productSN)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{productSN},
		"result", len(rentals),
		"error", err,
	)

	return rentals, err
}

// RentalWriteRepository handles rental write operations
type RentalWriteRepository struct {
	db *sqlx.DB
}

func NewRentalWriteRepository(db *sqlx.DB) *RentalWriteRepository {
	return &RentalWriteRepository{db: db}
}

// Save inserts a new rental row.
func (r *RentalWriteRepository) Save(ctx context.Context, rental models.RentalDB) error {
	const query = `
		INSERT INTO rentals (rental_id, product_sn, start_date, transaction_type, end_date, qty, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	args := []any{
		rental.RentalID, rental.ProductSN, rental.StartDate,
		rental.TransactionType, rental.EndDate, rental.Qty, rental.Description,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update mutates the row addressed by the (product_sn, start_date) string key.
// The key itself never moves; zero matched rows is not an error.
func (r *RentalWriteRepository) Update(ctx context.Context, productSN, startDate string, rental models.RentalDB) error {
	const query = `
		UPDATE rentals
		SET transaction_type = $1, end_date = $2, qty = $3, description = $4
		WHERE product_sn = $5 AND start_date = $6
	`
	args := []any{rental.TransactionType, rental.EndDate, rental.Qty, rental.Description, productSN, startDate}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the single row addressed by the (product_sn, start_date)
// string key, if any. Zero matched rows is not an error.
func (r *RentalWriteRepository) Delete(ctx context.Context, productSN, startDate string) error {
	const query = `
		DELETE FROM rentals
		WHERE product_sn = $1 AND start_date = $2
	`
	args := []any{productSN, startDate}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
