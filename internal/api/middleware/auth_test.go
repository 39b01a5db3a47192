package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbouvier/leitner-api/internal/api/shared"
	"github.com/tbouvier/leitner-api/internal/service/auth"
)

// stubTokenService validates only the literal token "good-token".
type stubTokenService struct{}

func (s *stubTokenService) Login(ctx context.Context, username, password string) (string, error) {
	return "good-token", nil
}

func (s *stubTokenService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	switch token {
	case "good-token":
		return &auth.Claims{UserID: "marie"}, nil
	case "expired-token":
		return nil, auth.ErrExpiredToken
	default:
		return nil, auth.ErrInvalidToken
	}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedUserID string
	}{
		{"valid token", "Bearer good-token", http.StatusOK, "marie"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized, ""},
		{"malformed header", "Bearer", http.StatusUnauthorized, ""},
		{"invalid token", "Bearer bad-token", http.StatusUnauthorized, ""},
		{"expired token", "Bearer expired-token", http.StatusUnauthorized, ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, ok := shared.GetUserID(r.Context())
				require.True(t, ok, "user ID must be present downstream of the middleware")
				gotUserID = userID
				w.WriteHeader(http.StatusOK)
			})

			mw := NewAuthMiddleware(&stubTokenService{})
			req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			mw.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedUserID != "" {
				assert.Equal(t, tc.expectedUserID, gotUserID)
			}
		})
	}
}
