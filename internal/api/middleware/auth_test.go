package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/mocks"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/service/auth"
)

// identityHandler records the user id the middleware put on the context.
func identityHandler(gotUser *uuid.UUID, gotOK *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotUser, *gotOK = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name        string
		header      string
		validateErr error
		wantStatus  int
		wantUser    bool
	}{
		{
			name:       "valid token",
			header:     "Bearer valid-token",
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:        "expired token",
			header:      "Bearer expired",
			validateErr: auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "refresh token used as access",
			header:      "Bearer refresh",
			validateErr: auth.ErrWrongTokenType,
			wantStatus:  http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				Claims:      &auth.Claims{UserID: userID, TokenType: "access"},
				ValidateErr: tc.validateErr,
			}
			mw := NewAuthMiddleware(jwtService)

			var gotUser uuid.UUID
			var gotOK bool
			handler := mw.Authenticate(identityHandler(&gotUser, &gotOK))

			req := httptest.NewRequest("GET", "/api/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantStatus, recorder.Code)
			if tc.wantUser {
				require.True(t, gotOK)
				assert.Equal(t, userID, gotUser)
			}
		})
	}
}

func TestAuthenticateOptional(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("absent header passes through anonymously", func(t *testing.T) {
		t.Parallel()

		mw := NewAuthMiddleware(&mocks.MockJWTService{})

		var gotUser uuid.UUID
		var gotOK bool
		handler := mw.AuthenticateOptional(identityHandler(&gotUser, &gotOK))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/anime/recommendations", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.False(t, gotOK)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		t.Parallel()

		mw := NewAuthMiddleware(&mocks.MockJWTService{
			Claims: &auth.Claims{UserID: userID, TokenType: "access"},
		})

		var gotUser uuid.UUID
		var gotOK bool
		handler := mw.AuthenticateOptional(identityHandler(&gotUser, &gotOK))

		req := httptest.NewRequest("GET", "/api/anime/recommendations", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.True(t, gotOK)
		assert.Equal(t, userID, gotUser)
	})

	t.Run("invalid token is still rejected", func(t *testing.T) {
		t.Parallel()

		mw := NewAuthMiddleware(&mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken})

		handler := mw.AuthenticateOptional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		}))

		req := httptest.NewRequest("GET", "/api/anime/recommendations", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
