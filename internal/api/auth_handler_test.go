package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbouvier/leitner-api/internal/service/auth"
)

// mockTokenService is a minimal TokenService stub for handler tests.
type mockTokenService struct {
	loginFn    func(ctx context.Context, username, password string) (string, error)
	validateFn func(ctx context.Context, token string) (*auth.Claims, error)
}

func (m *mockTokenService) Login(ctx context.Context, username, password string) (string, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockTokenService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.validateFn != nil {
		return m.validateFn(ctx, token)
	}
	return nil, auth.ErrInvalidToken
}

func TestLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		serviceToken   string
		serviceError   error
		expectedStatus int
	}{
		{
			name:           "Success",
			body:           `{"username":"marie","password":"secret"}`,
			serviceToken:   "signed-token",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Empty Credentials",
			body:           `{"username":"","password":""}`,
			serviceError:   auth.ErrEmptyCredentials,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed Body",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			mock := &mockTokenService{
				loginFn: func(ctx context.Context, username, password string) (string, error) {
					if tc.serviceError != nil {
						return "", tc.serviceError
					}
					return tc.serviceToken, nil
				},
			}
			handler := NewAuthHandler(mock, slog.Default())

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedStatus == http.StatusOK {
				var resp LoginResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "signed-token", resp.Token)
				assert.Equal(t, "marie", resp.User.ID)
				assert.Equal(t, "marie", resp.User.Username)
			}
		})
	}
}
