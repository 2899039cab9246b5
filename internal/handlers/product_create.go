package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/inventory-tracker/internal/logger"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
)

// ProductCreator defines the interface that the product creation service must implement.
type ProductCreator interface {
	Create(ctx context.Context, p models.ProductDB) (models.ProductDB, error)
}

// NewProductCreateHandler returns an HTTP handler creating a product.
// @Summary Create a product
// @Description Stores a new product. An empty product_sn is allocated server-side; a supplied one is used verbatim.
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.ProductDB true "Product to create"
// @Success 201 {object} models.ProductDB "Created product, including its serial number"
// @Failure 500 {object} handlers.ProductErrorResponse "Server error"
// @Router /products [post]
func NewProductCreateHandler(svc ProductCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ProductDB

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{Error: "invalid request body"})
			return
		}

		created, err := svc.Create(r.Context(), req)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProductErrorResponse{Error: "Server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}
