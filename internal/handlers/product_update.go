package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/inventory-tracker/internal/logger"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
)

// ProductUpdater defines the interface that the product update service must implement.
type ProductUpdater interface {
	Update(ctx context.Context, productSN string, p models.ProductDB) error
}

// ProductUpdateResponse represents a successful product update response
// swagger:model ProductUpdateResponse
type ProductUpdateResponse struct {
	// Success message
	// example: Product updated successfully
	Message string `json:"message"`
}

// NewProductUpdateHandler returns an HTTP handler replacing a product.
// @Summary Update a product
// @Description Full replacement of all mutable fields. An unknown serial number matches zero rows and is still a success.
// @Tags products
// @Accept json
// @Produce json
// @Param product_sn path string true "Product serial number"
// @Param product body models.ProductDB true "Replacement field values"
// @Success 200 {object} handlers.ProductUpdateResponse "Product updated"
// @Failure 500 {object} handlers.ProductErrorResponse "Server error"
// @Router /products/{product_sn} [put]
func NewProductUpdateHandler(svc ProductUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productSN := pathParam(r, "product_sn")

		var req models.ProductDB
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.Update(r.Context(), productSN, req); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProductErrorResponse{Error: "Server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProductUpdateResponse{
			Message: "Product updated successfully",
		})
	}
}
