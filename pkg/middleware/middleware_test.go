package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/pkg/log"
)

type stubValidator struct {
	claims *domain.Claims
	err    error
	calls  int
}

func (s *stubValidator) ValidateToken(string) (*domain.Claims, error) {
	s.calls++
	return s.claims, s.err
}

func contextWithClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		header         string
		validator      *stubValidator
		expectedStatus int
		expectCalled   bool
	}{
		{
			name:           "rota pública sem token",
			method:         http.MethodPost,
			path:           "/v1/login",
			validator:      &stubValidator{},
			expectedStatus: http.StatusOK,
			expectCalled:   true,
		},
		{
			name:           "preflight sem token",
			method:         http.MethodOptions,
			path:           "/v1/companies",
			validator:      &stubValidator{},
			expectedStatus: http.StatusOK,
			expectCalled:   true,
		},
		{
			name:           "sem header",
			method:         http.MethodGet,
			path:           "/v1/companies",
			validator:      &stubValidator{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "sem prefixo Bearer",
			method:         http.MethodGet,
			path:           "/v1/companies",
			header:         "abc",
			validator:      &stubValidator{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token rejeitado",
			method:         http.MethodGet,
			path:           "/v1/companies",
			header:         "Bearer abc",
			validator:      &stubValidator{err: errors.New("token inválido")},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token válido",
			method:         http.MethodGet,
			path:           "/v1/companies",
			header:         "Bearer abc",
			validator:      &stubValidator{claims: &domain.Claims{UserID: 1, UserRoleID: RoleAdmin}},
			expectedStatus: http.StatusOK,
			expectCalled:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := AuthMiddleware(tt.validator)(okHandler(&called))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectCalled, called)
		})
	}
}

func TestAuthMiddleware_StoresClaims(t *testing.T) {
	claims := &domain.Claims{UserID: 42, UserRoleID: RoleAnalyst}

	var got *domain.Claims
	handler := AuthMiddleware(&stubValidator{claims: claims})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ClaimsFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/companies", nil)
	req.Header.Set("Authorization", "Bearer token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, 42, got.UserID)
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		middleware     func(http.Handler) http.Handler
		claims         *domain.Claims
		expectedStatus int
	}{
		{name: "sem claims", middleware: AllRoles(), expectedStatus: http.StatusUnauthorized},
		{name: "viewer lendo", middleware: AllRoles(), claims: &domain.Claims{UserRoleID: RoleViewer}, expectedStatus: http.StatusOK},
		{name: "viewer editando", middleware: Editors(), claims: &domain.Claims{UserRoleID: RoleViewer}, expectedStatus: http.StatusForbidden},
		{name: "analista editando", middleware: Editors(), claims: &domain.Claims{UserRoleID: RoleAnalyst}, expectedStatus: http.StatusOK},
		{name: "analista em rota admin", middleware: AdminOnly(), claims: &domain.Claims{UserRoleID: RoleAnalyst}, expectedStatus: http.StatusForbidden},
		{name: "admin", middleware: AdminOnly(), claims: &domain.Claims{UserRoleID: RoleAdmin}, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := tt.middleware(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, "/v1/companies", nil)
			if tt.claims != nil {
				req = req.WithContext(contextWithClaims(req, tt.claims))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, called)
		})
	}
}

func TestCors(t *testing.T) {
	called := false
	handler := Cors([]string{"http://localhost:3000"})(okHandler(&called))

	req := httptest.NewRequest(http.MethodOptions, "/v1/companies", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, called)

	req = httptest.NewRequest(http.MethodGet, "/v1/companies", nil)
	req.Header.Set("Origin", "http://malicioso.com")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, called)
}

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var ctxID string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotEmpty(t, ctxID)
	assert.Equal(t, ctxID, rr.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/companies", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "SRV_001")
}

func TestStatusResponseWriter_Reused(t *testing.T) {
	rr := httptest.NewRecorder()
	srw := newStatusResponseWriter(rr)

	assert.Same(t, srw, newStatusResponseWriter(srw))

	srw.WriteHeader(http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, srw.statusCode)
}
