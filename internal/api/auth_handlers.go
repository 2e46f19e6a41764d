// ABOUTME: Registration and token issuance handlers
// ABOUTME: POST /auth/register (JSON) and POST /auth/token (form-encoded)

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devfolio/portfolio-api/internal/auth"
	"github.com/devfolio/portfolio-api/internal/store"
)

// RegisterRequest is the JSON request body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// TokenResponse is the JSON response for POST /auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// handleRegister handles POST /auth/register requests. Registration reveals
// username conflicts; only login failures are generic.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	_, err := s.auth.Register(r.Context(), req.Username, req.Password, req.Role)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, map[string]string{"message": "registered"})
	case errors.Is(err, store.ErrUsernameExists):
		writeJSONError(w, http.StatusBadRequest, "username already exists")
	case errors.Is(err, auth.ErrInvalidUsername),
		errors.Is(err, auth.ErrPasswordEmpty),
		errors.Is(err, auth.ErrPasswordTooLong):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("registering principal", "error", err)
		writeJSONError(w, http.StatusServiceUnavailable, "service unavailable")
	}
}

// handleToken handles POST /auth/token requests. The request is form-encoded
// with username and password fields; the response follows the OAuth2 bearer
// token shape.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := s.auth.Login(r.Context(), username, password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	case errors.Is(err, auth.ErrInvalidCredentials):
		// Same body for unknown user and wrong password
		writeJSONError(w, http.StatusBadRequest, "incorrect username or password")
	default:
		s.logger.Error("logging in", "error", err)
		writeJSONError(w, http.StatusServiceUnavailable, "service unavailable")
	}
}
