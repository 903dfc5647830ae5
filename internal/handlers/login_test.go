package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-gift-ledger/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			inputBody: LoginRequest{
				Username: "john",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "pass123").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"token": "JWT_TOKEN"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid request body", "code": "invalid_request"},
		},
		{
			name:         "blank username",
			inputBody:    LoginRequest{Username: "   ", Password: "pass123"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Username and password are required", "code": "invalid_request"},
		},
		{
			name: "username is trimmed",
			inputBody: LoginRequest{
				Username: " john ",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "pass123").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"token": "JWT_TOKEN"},
		},
		{
			name: "user does not exist",
			inputBody: LoginRequest{
				Username: "wronguser",
				Password: "wrongpass",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "wronguser", "wrongpass").
					Return("", services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]string{"error": "Invalid username or password", "code": "invalid_credentials"},
		},
		{
			name: "wrong password",
			inputBody: LoginRequest{
				Username: "john",
				Password: "nope",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "nope").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]string{"error": "Invalid username or password", "code": "invalid_credentials"},
		},
		{
			name: "internal error",
			inputBody: LoginRequest{
				Username: "john",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "pass123").
					Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error", "code": "internal_error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body []byte
			if s, ok := tt.inputBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.inputBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
