package models

// ProductDB represents a product row in the database.
// PurchaseDate is stored as normalized "YYYY-MM-DD HH:MM:SS" local-time text.
type ProductDB struct {
	ProductSN    string  `json:"product_sn" db:"product_sn"`       // Serial number, primary key
	PurchaseDate string  `json:"purchase_date" db:"purchase_date"` // Normalized date-time text
	Name         string  `json:"name" db:"name"`                   // Product name
	Price        float64 `json:"price" db:"price"`                 // Non-negative unit price
	Vendor       string  `json:"vendor" db:"vendor"`               // Vendor name
	Description  string  `json:"description" db:"description"`     // Free text, may be empty
}
