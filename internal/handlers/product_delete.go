package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/inventory-tracker/internal/logger"
)

// ProductDeleter defines the interface that the product deletion service must implement.
type ProductDeleter interface {
	Delete(ctx context.Context, productSN string) error
}

// ProductDeleteResponse represents a successful product deletion response
// swagger:model ProductDeleteResponse
type ProductDeleteResponse struct {
	// Success message
	// example: Product and related rentals deleted successfully
	Message string `json:"message"`
}

// NewProductDeleteHandler returns an HTTP handler deleting a product and its rentals.
// @Summary Delete a product
// @Description Removes the product and, atomically, every rental record referencing it.
// @Tags products
// @Produce json
// @Param product_sn path string true "Product serial number"
// @Success 200 {object} handlers.ProductDeleteResponse "Product and rentals deleted"
// @Failure 500 {object} handlers.ProductErrorResponse "Server error"
// @Router /products/{product_sn} [delete]
func NewProductDeleteHandler(svc ProductDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productSN := pathParam(r, "product_sn")

		if err := svc.Delete(r.Context(), productSN); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProductErrorResponse{Error: "Server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProductDeleteResponse{
			Message: "Product and related rentals deleted successfully",
		})
	}
}
