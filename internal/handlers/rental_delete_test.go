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

func TestRentalDeleteHandler(t *testing.T) {
	tests := []struct {
		name            string
		target          string
		setupMocks      func(mockSvc *MockRentalDeleter)
		expectedStatus  int
		expectedMessage string
		expectedError   string
	}{
		{
			name:   "successful delete with encoded start date",
			target: "/rentals/ABCDE123/2024-07-19%2017:19:10",
			setupMocks: func(mockSvc *MockRentalDeleter) {
				mockSvc.EXPECT().Delete(gomock.Any(), "ABCDE123", "2024-07-19 17:19:10").
					Return(nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Rental record deleted successfully",
		},
		{
			name:   "unmatched key is still a success",
			target: "/rentals/ABCDE123/2030-01-01%2000:00:00",
			setupMocks: func(mockSvc *MockRentalDeleter) {
				mockSvc.EXPECT().Delete(gomock.Any(), "ABCDE123", "2030-01-01 00:00:00").
					Return(nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Rental record deleted successfully",
		},
		{
			name:   "storage failure",
			target: "/rentals/ABCDE123/2024-07-19%2017:19:10",
			setupMocks: func(mockSvc *MockRentalDeleter) {
				mockSvc.EXPECT().Delete(gomock.Any(), "ABCDE123", "2024-07-19 17:19:10").
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

			mockSvc := NewMockRentalDeleter(ctrl)
			tt.setupMocks(mockSvc)

			router := chi.NewRouter()
			router.Delete("/rentals/{product_sn}/{start_date}", NewRentalDeleteHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedError != "" {
				var resp RentalErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp RentalDeleteResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}
