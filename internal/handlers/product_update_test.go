package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestProductUpdateHandler(t *testing.T) {
	tests := []struct {
		name            string
		target          string
		requestBody     string
		setupMocks      func(mockSvc *MockProductUpdater)
		expectedStatus  int
		expectedMessage string
		expectedError   string
	}{
		{
			name:        "successful update",
			target:      "/products/ABCDE123",
			requestBody: `{"name":"Widget v2","price":12,"vendor":"Acme"}`,
			setupMocks: func(mockSvc *MockProductUpdater) {
				mockSvc.EXPECT().Update(gomock.Any(), "ABCDE123", models.ProductDB{
					Name:   "Widget v2",
					Price:  12,
					Vendor: "Acme",
				}).Return(nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Product updated successfully",
		},
		{
			name:        "unknown serial is still a success",
			target:      "/products/NOSUCH999",
			requestBody: `{"name":"ghost"}`,
			setupMocks: func(mockSvc *MockProductUpdater) {
				mockSvc.EXPECT().Update(gomock.Any(), "NOSUCH999", models.ProductDB{Name: "ghost"}).
					Return(nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Product updated successfully",
		},
		{
			name:           "malformed json",
			target:         "/products/ABCDE123",
			requestBody:    `{"name":`,
			setupMocks:     func(mockSvc *MockProductUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name:        "storage failure",
			target:      "/products/ABCDE123",
			requestBody: `{"name":"Widget v2"}`,
			setupMocks: func(mockSvc *MockProductUpdater) {
				mockSvc.EXPECT().Update(gomock.Any(), "ABCDE123", models.ProductDB{Name: "Widget v2"}).
					Return(errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockProductUpdater(ctrl)
			tt.setupMocks(mockSvc)

			router := chi.NewRouter()
			router.Put("/products/{product_sn}", NewProductUpdateHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPut, tt.target, bytes.NewBufferString(tt.requestBody))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedError != "" {
				var resp ProductErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp ProductUpdateResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}
