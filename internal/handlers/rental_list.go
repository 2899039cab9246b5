package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/inventory-tracker/internal/logger"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
)

// RentalLister defines the interface that the rental listing service must implement.
type RentalLister interface {
	ListByProduct(ctx context.Context, productSN string) ([]models.RentalDB, error)
}

// RentalErrorResponse represents an error response for rental operations
// swagger:model RentalErrorResponse
type RentalErrorResponse struct {
	// Error message
	// example: Server error
	Error string `json:"error"`
}

// NewRentalListHandler returns an HTTP handler listing rentals for a product.
// @Summary List rentals for a product
// @Description Returns every rental record referencing the given serial number.
// @Tags rentals
// @Produce json
// @Param product_sn path string true "Product serial number"
// @Success 200 {array} models.RentalDB "All rentals for the product"
// @Failure 500 {object} handlers.RentalErrorResponse "Server error"
// @Router /rentals/{product_sn} [get]
func NewRentalListHandler(svc RentalLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productSN := pathParam(r, "product_sn")

		rentals, err := svc.ListByProduct(r.Context(), productSN)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RentalErrorResponse{Error: "Server error"})
			return
		}

		if rentals == nil {
			rentals = []models.RentalDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(rentals)
	}
}
