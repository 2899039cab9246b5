package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/inventory-tracker/internal/logger"
)

// Bootstrap creates the accounts, products and rentals tables if they do not
// exist yet. Name uniqueness on accounts is byte-exact under PostgreSQL's
// default comparison. Rentals carry a cascading foreign key in addition to
// the explicit transactional cascade in ProductWriteRepository.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS accounts (
			id            BIGSERIAL PRIMARY KEY,
			name          TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			last_login_at TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS products (
			product_sn    TEXT PRIMARY KEY,
			purchase_date TEXT NOT NULL,
			name          TEXT NOT NULL,
			price         DOUBLE PRECISION NOT NULL,
			vendor        TEXT NOT NULL,
			description   TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS rentals (
			rental_id        UUID NOT NULL,
			product_sn       TEXT NOT NULL REFERENCES products (product_sn) ON DELETE CASCADE,
			start_date       TEXT NOT NULL,
			transaction_type INT NOT NULL,
			end_date         TEXT,
			qty              DOUBLE PRECISION NOT NULL,
			description      TEXT NOT NULL DEFAULT '',
			UNIQUE (product_sn, start_date)
		);
	`

	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		logger.Log.Errorw("schema bootstrap failed", "error", err)
	}
	return err
}
