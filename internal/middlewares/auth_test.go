package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-gift-ledger/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuthMiddleware_GiftRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		method     string
		target     string
		setup      func(m *MockTokener)
		wantStatus int
		wantNext   bool
	}{
		{
			name:   "send without bearer header",
			method: http.MethodPost,
			target: "/gifts",
			setup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("missing bearer token"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "claim with expired token",
			method: http.MethodPost,
			target: "/gifts/0b1f6a3e-4c61-4f0e-9d44-2a1d6c1f0e01/claim",
			setup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("stale", nil)
				m.EXPECT().Validate(gomock.Any(), "stale").Return(errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "list with valid token",
			method: http.MethodGet,
			target: "/gifts",
			setup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("fresh", nil)
				m.EXPECT().Validate(gomock.Any(), "fresh").Return(nil)
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokener := NewMockTokener(ctrl)
			tt.setup(tokener)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, tt.target, nil)
			rr := httptest.NewRecorder()
			AuthMiddleware(tokener)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if tt.wantStatus != http.StatusUnauthorized {
				return
			}
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body unauthorizedResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, unauthorizedResponse{Error: "Unauthorized", Code: "unauthorized"}, body)
		})
	}
}

func TestAuthMiddleware_LogsRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	core, logs := observer.New(zapcore.ErrorLevel)
	original := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = original }()

	tokener := NewMockTokener(ctrl)
	tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("missing bearer token"))

	handler := LoggingMiddleware(AuthMiddleware(tokener)(http.NotFoundHandler()))

	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	entries := logs.FilterMessage("authorization failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
}
