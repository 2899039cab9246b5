package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/inventory-tracker/internal/logger"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
)

// ProductLister defines the interface that the product listing service must implement.
type ProductLister interface {
	List(ctx context.Context) ([]models.ProductDB, error)
}

// ProductErrorResponse represents an error response for product operations
// swagger:model ProductErrorResponse
type ProductErrorResponse struct {
	// Error message
	// example: Server error
	Error string `json:"error"`
}

// NewProductListHandler returns an HTTP handler listing all products.
// @Summary List products
// @Description Returns every product record with no filtering or pagination.
// @Tags products
// @Produce json
// @Success 200 {array} models.ProductDB "All products"
// @Failure 500 {object} handlers.ProductErrorResponse "Server error"
// @Router /products [get]
func NewProductListHandler(svc ProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProductErrorResponse{Error: "Server error"})
			return
		}

		if products == nil {
			products = []models.ProductDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(products)
	}
}
