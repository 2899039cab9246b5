package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/inventory-tracker/internal/logger"
)

// RentalDeleter defines the interface that the rental deletion service must implement.
type RentalDeleter interface {
	Delete(ctx context.Context, productSN, startDate string) error
}

// RentalDeleteResponse represents a successful rental deletion response
// swagger:model RentalDeleteResponse
type RentalDeleteResponse struct {
	// Success message
	// example: Rental record deleted successfully
	Message string `json:"message"`
}

// NewRentalDeleteHandler returns an HTTP handler deleting a rental record.
// @Summary Delete a rental record
// @Description Removes the record addressed by (product_sn, start_date). The key is matched as text; an unmatched key deletes zero rows and is still a success.
// @Tags rentals
// @Produce json
// @Param product_sn path string true "Product serial number"
// @Param start_date path string true "Exact stored start date-time text, percent-encoded"
// @Success 200 {object} handlers.RentalDeleteResponse "Rental deleted"
// @Failure 500 {object} handlers.RentalErrorResponse "Server error"
// @Router /rentals/{product_sn}/{start_date} [delete]
func NewRentalDeleteHandler(svc RentalDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productSN := pathParam(r, "product_sn")
		startDate := pathParam(r, "start_date")

		if err := svc.Delete(r.Context(), productSN, startDate); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RentalErrorResponse{Error: "Server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RentalDeleteResponse{
			Message: "Rental record deleted successfully",
		})
	}
}
