package models

import "github.com/google/uuid"

// Transaction type codes for rental records.
// Other values are accepted and stored but carry no defined semantic.
const (
	TransactionInbound  = 1
	TransactionOutbound = 2
)

// RentalDB represents a rental (stock movement) row in the database.
//
// RentalID is a surrogate identifier assigned at creation and never changed.
// The public addressing key remains the (ProductSN, StartDate) string pair:
// StartDate equality is plain string equality on the normalized text, so two
// representations of the same instant that format differently do not match.
type RentalDB struct {
	RentalID        uuid.UUID `json:"rental_id" db:"rental_id"`               // Surrogate key
	ProductSN       string    `json:"product_sn" db:"product_sn"`             // Foreign key to products
	StartDate       string    `json:"start_date" db:"start_date"`             // Normalized date-time text, half of the addressing key
	TransactionType int       `json:"transaction_type" db:"transaction_type"` // 1 = inbound, 2 = outbound
	EndDate         *string   `json:"end_date" db:"end_date"`                 // Nil for open-ended movements
	Qty             float64   `json:"qty" db:"qty"`                           // May be fractional
	Description     string    `json:"description" db:"description"`           // Free text
}
