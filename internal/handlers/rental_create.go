package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/inventory-tracker/internal/logger"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
)

// RentalCreator defines the interface that the rental creation service must implement.
type RentalCreator interface {
	Create(ctx context.Context, rental models.RentalDB) (models.RentalDB, error)
}

// RentalCreateRequest represents the JSON body for rental creation.
// Transaction type and quantity are required columns; pointers distinguish
// an absent field from a zero value.
// swagger:model RentalCreateRequest
type RentalCreateRequest struct {
	// Product serial number
	// required: true
	// example: ABCDE123
	ProductSN string `json:"product_sn"`

	// Start date-time, normalized before storage
	// required: true
	// example: 2024-07-19 17:19:10
	StartDate string `json:"start_date"`

	// Transaction type: 1 = inbound, 2 = outbound
	// required: true
	// example: 1
	TransactionType *int `json:"transaction_type"`

	// End date-time, absent for open-ended movements
	// example: 2024-07-21 09:00:00
	EndDate *string `json:"end_date"`

	// Quantity, may be fractional
	// required: true
	// example: 2.5
	Qty *float64 `json:"qty"`

	// Free-text description
	// example: issued to workshop
	Description string `json:"description"`
}

// NewRentalCreateHandler returns an HTTP handler creating a rental record.
// @Summary Create a rental record
// @Description Stores a new stock movement keyed by (product_sn, normalized start_date) and assigns it a surrogate rental_id.
// @Tags rentals
// @Accept json
// @Produce json
// @Param rental body handlers.RentalCreateRequest true "Rental to create"
// @Success 201 {object} models.RentalDB "Created rental"
// @Failure 500 {object} handlers.RentalErrorResponse "Server error"
// @Router /rentals [post]
func NewRentalCreateHandler(svc RentalCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RentalCreateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RentalErrorResponse{Error: "invalid request body"})
			return
		}

		// A missing transaction type or quantity would violate the NOT NULL
		// columns; report it the way the store would.
		if req.TransactionType == nil || req.Qty == nil {
			logger.Log.Errorw("rental create missing required fields",
				"product_sn", req.ProductSN, "start_date", req.StartDate)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RentalErrorResponse{Error: "Server error"})
			return
		}

		created, err := svc.Create(r.Context(), models.RentalDB{
			ProductSN:       req.ProductSN,
			StartDate:       req.StartDate,
			TransactionType: *req.TransactionType,
			EndDate:         req.EndDate,
			Qty:             *req.Qty,
			Description:     req.Description,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RentalErrorResponse{Error: "Server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}
