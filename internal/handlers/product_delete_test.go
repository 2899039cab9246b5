package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestProductDeleteHandler(t *testing.T) {
	tests := []struct {
		name            string
		target          string
		setupMocks      func(mockSvc *MockProductDeleter)
		expectedStatus  int
		expectedMessage string
		expectedError   string
	}{
		{
			name:   "successful cascade delete",
			target: "/products/ABCDE123",
			setupMocks: func(mockSvc *MockProductDeleter) {
				mockSvc.EXPECT().Delete(gomock.Any(), "ABCDE123").Return(nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Product and related rentals deleted successfully",
		},
		{
			name:   "unknown serial is still a success",
			target: "/products/NOSUCH999",
			setupMocks: func(mockSvc *MockProductDeleter) {
				mockSvc.EXPECT().Delete(gomock.Any(), "NOSUCH999").Return(nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Product and related rentals deleted successfully",
		},
		{
			name:   "storage failure",
			target: "/products/ABCDE123",
			setupMocks: func(mockSvc *MockProductDeleter) {
				mockSvc.EXPECT().Delete(gomock.Any(), "ABCDE123").Return(errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockProductDeleter(ctrl)
			tt.setupMocks(mockSvc)

			router := chi.NewRouter()
			router.Delete("/products/{product_sn}", NewProductDeleteHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedError != "" {
				var resp ProductErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp ProductDeleteResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}
