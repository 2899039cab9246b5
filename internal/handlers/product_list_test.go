package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestProductListHandler(t *testing.T) {
	products := []models.ProductDB{
		{ProductSN: "ABCDE123", PurchaseDate: "2024-07-19 17:19:10", Name: "Widget", Price: 19.99, Vendor: "Acme"},
		{ProductSN: "FGHIJ456", PurchaseDate: "2024-07-20 08:00:00", Name: "Sprocket", Price: 5, Vendor: "Globex"},
	}

	tests := []struct {
		name           string
		setupMocks     func(mockSvc *MockProductLister)
		expectedStatus int
		expectedBody   []models.ProductDB
		expectedError  string
	}{
		{
			name: "returns all products",
			setupMocks: func(mockSvc *MockProductLister) {
				mockSvc.EXPECT().List(gomock.Any()).Return(products, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   products,
		},
		{
			name: "empty store yields empty array",
			setupMocks: func(mockSvc *MockProductLister) {
				mockSvc.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []models.ProductDB{},
		},
		{
			name: "storage failure",
			setupMocks: func(mockSvc *MockProductLister) {
				mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockProductLister(ctrl)
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/products", nil)
			rec := httptest.NewRecorder()

			NewProductListHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedError != "" {
				var resp ProductErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp []models.ProductDB
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedBody, resp)
			}
		})
	}
}
