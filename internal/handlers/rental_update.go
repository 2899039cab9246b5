package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/inventory-tracker/internal/logger"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
)

// RentalUpdater defines the interface that the rental update service must implement.
type RentalUpdater interface {
	Update(ctx context.Context, productSN, startDate string, rental models.RentalDB) error
}

// RentalUpdateRequest represents the JSON body for rental updates. A
// start_date in the body never moves the addressing key.
// swagger:model RentalUpdateRequest
type RentalUpdateRequest struct {
	// Transaction type: 1 = inbound, 2 = outbound
	// example: 2
	TransactionType int `json:"transaction_type"`

	// End date-time, null clears it
	// example: 2024-07-21 09:00:00
	EndDate *string `json:"end_date"`

	// Quantity, may be fractional
	// example: 1.5
	Qty float64 `json:"qty"`

	// Free-text description
	// example: returned early
	Description string `json:"description"`
}

// RentalUpdateResponse represents a successful rental update response
// swagger:model RentalUpdateResponse
type RentalUpdateResponse struct {
	// Success message
	// example: Rental record updated successfully
	Message string `json:"message"`
}

// NewRentalUpdateHandler returns an HTTP handler updating a rental record.
// @Summary Update a rental record
// @Description Mutates transaction type, end date, quantity and description of the record addressed by the path key. An unmatched key updates zero rows and is still a success.
// @Tags rentals
// @Accept json
// @Produce json
// @Param product_sn path string true "Product serial number"
// @Param start_date path string true "Exact stored start date-time text, percent-encoded"
// @Param rental body handlers.RentalUpdateRequest true "Replacement field values"
// @Success 200 {object} handlers.RentalUpdateResponse "Rental updated"
// @Failure 500 {object} handlers.RentalErrorResponse "Server error"
// @Router /rentals/{product_sn}/{start_date} [put]
func NewRentalUpdateHandler(svc RentalUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productSN := pathParam(r, "product_sn")
		startDate := pathParam(r, "start_date")

		var req RentalUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RentalErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.Update(r.Context(), productSN, startDate, models.RentalDB{
			TransactionType: req.TransactionType,
			EndDate:         req.EndDate,
			Qty:             req.Qty,
			Description:     req.Description,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RentalErrorResponse{Error: "Server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RentalUpdateResponse{
			Message: "Rental record updated successfully",
		})
	}
}
