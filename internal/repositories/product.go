package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/inventory-tracker/internal/logger"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
)

// ProductReadRepository handles product read operations
type ProductReadRepository struct {
	db *sqlx.DB
}

func NewProductReadRepository(db *sqlx.DB) *ProductReadRepository {
	return &ProductReadRepository{db: db}
}

// List returns all product rows in store order.
func (r *ProductReadRepository) List(ctx context.Context) ([]models.ProductDB, error) {
	const query = `
		SELECT product_sn, purchase_date, name, price, vendor, description
		FROM products
	`

	var products []models.ProductDB
	err := r.db.SelectContext(ctx, &products, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"result", len(products),
		"error", err,
	)

	return products, err
}

// Exists reports whether a product with the given serial number is stored.
func (r *ProductReadRepository) Exists(ctx context.Context, productSN string) (bool, error) {
	const query = `
		SELECT EXISTS (SELECT 1 FROM products WHERE product_sn = $1)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, productSN)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{productSN},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ProductWriteRepository handles product write operations
type ProductWriteRepository struct {
	db *sqlx.DB
}

func NewProductWriteRepository(db *sqlx.DB) *ProductWriteRepository {
	return &ProductWriteRepository{db: db}
}

// Save inserts a new product row. A duplicate serial number surfaces the
// store's uniqueness violation unchanged.
func (r *ProductWriteRepository) Save(ctx context.Context, p models.ProductDB) error {
	const query = `
		INSERT INTO products (product_sn, purchase_date, name, price, vendor, description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{p.ProductSN, p.PurchaseDate, p.Name, p.Price, p.Vendor, p.Description}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update replaces all mutable fields of the addressed product.
// Zero matched rows is not an error.
func (r *ProductWriteRepository) Update(ctx context.Context, productSN string, p models.ProductDB) error {
	const query = `
		UPDATE products
		SET purchase_date = $1, name = $2, price = $3, vendor = $4, description = $5
		WHERE product_sn = $6
	`
	args := []any{p.PurchaseDate, p.Name, p.Price, p.Vendor, p.Description, productSN}

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

// DeleteCascade removes the product and every rental referencing it inside a
// single transaction, so concurrent readers never observe one without the other.
func (r *ProductWriteRepository) DeleteCascade(ctx context.Context, productSN string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin cascade delete transaction", "error", err)
		return err
	}

	const deleteRentals = `DELETE FROM rentals WHERE product_sn = $1`
	const deleteProduct = `DELETE FROM products WHERE product_sn = $1`

	if _, err := tx.ExecContext(ctx, deleteRentals, productSN); err != nil {
		tx.Rollback()
		logger.Log.Infow("query", "sql", deleteRentals, "args", []any{productSN}, "error", err)
		return err
	}
	if _, err := tx.ExecContext(ctx, deleteProduct, productSN); err != nil {
		tx.Rollback()
		logger.Log.Infow("query", "sql", deleteProduct, "args", []any{productSN}, "error", err)
		return err
	}

	err = tx.Commit()

	logger.Log.Infow("query",
		"sql", deleteRentals+"; "+deleteProduct,
		"args", []any{productSN},
		"error", err,
	)

	return err
}
