package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/business-copilot-api/pkg/log"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserID: "user-1", BusinessName: "Le Petit Bistro"}

	tests := []struct {
		name           string
		path           string
		header         string
		validator      fakeValidator
		expectedStatus int
		expectedCode   string
		expectedUser   string
	}{
		{
			name:           "Rota pública sem token",
			path:           "/v1/login",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Métricas são públicas",
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sem header Authorization",
			path:           "/v1/posts",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:           "Header sem Bearer",
			path:           "/v1/posts",
			header:         "Token abc",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:           "Token expirado",
			path:           "/v1/posts",
			header:         "Bearer abc",
			validator:      fakeValidator{err: authenticating.ErrExpiredToken},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:           "Token inválido",
			path:           "/v1/posts",
			header:         "Bearer abc",
			validator:      fakeValidator{err: errors.New("assinatura")},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:           "Token válido grava as claims no contexto",
			path:           "/v1/posts",
			header:         "Bearer abc",
			validator:      fakeValidator{claims: claims},
			expectedStatus: http.StatusOK,
			expectedUser:   "user-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if c, ok := ClaimsFromContext(r.Context()); ok {
					gotUser = c.UserID
					assert.Equal(t, c.UserID, log.GetUserID(r.Context()))
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedUser, gotUser)
			if tt.expectedCode != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedCode)
			}
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:5173"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight termina no middleware", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/posts", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/posts", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
