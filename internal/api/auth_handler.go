package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tbouvier/leitner-api/internal/api/shared"
	"github.com/tbouvier/leitner-api/internal/platform/logger"
	"github.com/tbouvier/leitner-api/internal/service/auth"
)

// LoginRequest represents the request body for a login attempt.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the client rendering of the authenticated user.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	tokenService auth.TokenService
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokenService auth.TokenService, log *slog.Logger) *AuthHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}
	return &AuthHandler{
		tokenService: tokenService,
		logger:       log.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /auth/login requests. The identity layer is
// stub-grade: any non-empty credentials are accepted and the username
// becomes the opaque user ID carried by the token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.tokenService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("user logged in", slog.String("username", req.Username))
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token: token,
		User: UserResponse{
			ID:       req.Username,
			Username: req.Username,
		},
	})
}
