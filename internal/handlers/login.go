package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/inventory-tracker/internal/logger"
	"github.com/sbilibin2017/inventory-tracker/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, name, password string) (string, error)
}

// LoginRequest represents the JSON body for account login
// swagger:model LoginRequest
type LoginRequest struct {
	// Display name
	// required: true
	// example: tester_1
	Name string `json:"name"`

	// Password
	// required: true
	// example: password123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Always true on success
	// example: true
	Auth bool `json:"auth"`

	// Signed session token
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// example: Invalid password
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for account login.
// @Summary Account login
// @Description Verifies credentials, stamps the last-login time, and returns a session token valid for 24 hours.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Session token returned"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid password"
// @Failure 404 {object} handlers.LoginErrorResponse "Unknown account"
// @Failure 500 {object} handlers.LoginErrorResponse "Server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token, err := svc.Login(r.Context(), req.Name, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "User not found",
				})
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Invalid password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Auth:  true,
			Token: token,
		})
	}
}
