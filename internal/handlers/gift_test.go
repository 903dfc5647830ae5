package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gift-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-gift-ledger/internal/models"
	"github.com/sbilibin2017/gw-gift-ledger/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectCaller(m *MockGiftTokener, caller models.Identity) {
	m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
	m.EXPECT().GetClaims(gomock.Any(), "token").
		Return(&jwt.Claims{UserID: caller.UserID, Username: caller.Username}, nil)
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestWriteGiftError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{services.ErrUserNotFound, http.StatusNotFound, "user_not_found"},
		{services.ErrSelfGiftNotAllowed, http.StatusBadRequest, "self_gift"},
		{services.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount"},
		{services.ErrInvalidCurrency, http.StatusBadRequest, "invalid_currency"},
		{services.ErrMessageTooLong, http.StatusBadRequest, "message_too_long"},
		{services.ErrInsufficientFunds, http.StatusConflict, "insufficient_funds"},
		{services.ErrGiftNotFound, http.StatusNotFound, "gift_not_found"},
		{services.ErrNotRecipient, http.StatusForbidden, "not_recipient"},
		{services.ErrAlreadyClaimed, http.StatusConflict, "already_claimed"},
		{services.ErrGiftExpired, http.StatusGone, "gift_expired"},
		{fmt.Errorf("wrapped: %w", services.ErrGiftExpired), http.StatusGone, "gift_expired"},
		{errors.New("db down"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeGiftError(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			resp := decodeError(t, rr)
			assert.Equal(t, tt.code, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestSendGiftHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := models.Identity{UserID: uuid.New(), Username: "alice"}
	now := time.Now()

	tests := []struct {
		name         string
		body         string
		auth         bool
		mockSetup    func(m *MockGiftSender)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "numeric amount",
			body: `{"recipient":"bob","currency":"coins","amount":30,"message":"gg"}`,
			auth: true,
			mockSetup: func(m *MockGiftSender) {
				m.EXPECT().Send(gomock.Any(), alice, "bob", models.Coins, int64(30), "gg").
					Return(&models.Gift{ID: uuid.New(), Amount: 30, ExpiresAt: now.Add(time.Hour)}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "string amount",
			body: `{"recipient":"bob","currency":"gems","amount":" 12 "}`,
			auth: true,
			mockSetup: func(m *MockGiftSender) {
				m.EXPECT().Send(gomock.Any(), alice, "bob", models.Gems, int64(12), "").
					Return(&models.Gift{ID: uuid.New(), Amount: 12, ExpiresAt: now.Add(time.Hour)}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "fractional amount is passed as zero",
			body: `{"recipient":"bob","currency":"coins","amount":"1.5"}`,
			auth: true,
			mockSetup: func(m *MockGiftSender) {
				m.EXPECT().Send(gomock.Any(), alice, "bob", models.Coins, int64(0), "").
					Return(nil, services.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid_amount",
		},
		{
			name: "unknown recipient reported before bad amount",
			body: `{"recipient":"ghost","currency":"coins","amount":"abc"}`,
			auth: true,
			mockSetup: func(m *MockGiftSender) {
				m.EXPECT().Send(gomock.Any(), alice, "ghost", models.Coins, int64(0), "").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "user_not_found",
		},
		{
			name: "insufficient funds",
			body: `{"recipient":"bob","currency":"coins","amount":50}`,
			auth: true,
			mockSetup: func(m *MockGiftSender) {
				m.EXPECT().Send(gomock.Any(), alice, "bob", models.Coins, int64(50), "").
					Return(nil, services.ErrInsufficientFunds)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "insufficient_funds",
		},
		{
			name:         "invalid json",
			body:         `{"recipient":`,
			auth:         true,
			mockSetup:    func(m *MockGiftSender) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid_request",
		},
		{
			name:         "unauthorized",
			body:         `{}`,
			mockSetup:    func(m *MockGiftSender) {},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockGiftSender(ctrl)
			mockTokener := NewMockGiftTokener(ctrl)
			tt.mockSetup(mockSvc)
			if tt.auth {
				expectCaller(mockTokener, alice)
			} else {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("missing"))
			}

			req := httptest.NewRequest(http.MethodPost, "/gifts", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewSendGiftHandler(mockSvc, mockTokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeError(t, rr).Code)
				return
			}

			var resp map[string]interface{}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, string(models.GiftPending), resp["state"])
			assert.Contains(t, resp, "id")
			assert.Contains(t, resp, "expires_at")
		})
	}
}

func TestListGiftsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bob := models.Identity{UserID: uuid.New(), Username: "bob"}
	asOf := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	pending := models.Gift{ID: uuid.New(), RecipientID: bob.UserID, Amount: 5, ExpiresAt: asOf.Add(time.Hour)}
	expired := models.Gift{ID: uuid.New(), RecipientID: bob.UserID, Amount: 7, ExpiresAt: asOf.Add(-time.Hour)}
	sent := models.Gift{ID: uuid.New(), SenderID: bob.UserID, Amount: 9, ExpiresAt: asOf.Add(time.Hour), IsClaimed: true}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockGiftLister(ctrl)
		mockTokener := NewMockGiftTokener(ctrl)
		expectCaller(mockTokener, bob)
		mockSvc.EXPECT().List(gomock.Any(), bob.UserID).Return(&models.GiftList{
			Received:  []models.Gift{pending, expired},
			Sent:      []models.Gift{sent},
			Unclaimed: []models.Gift{pending},
			AsOf:      asOf,
		}, nil)

		rr := httptest.NewRecorder()
		NewListGiftsHandler(mockSvc, mockTokener).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/gifts", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp ListGiftsResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

		require.Len(t, resp.Received, 2)
		assert.Equal(t, models.GiftPending, resp.Received[0].State)
		assert.Equal(t, models.GiftExpired, resp.Received[1].State)
		require.Len(t, resp.Sent, 1)
		assert.Equal(t, models.GiftClaimed, resp.Sent[0].State)
		assert.Equal(t, 1, resp.UnclaimedCount)
		assert.Equal(t, pending.ID, resp.Unclaimed[0].ID)
		assert.True(t, asOf.Equal(resp.AsOf))
	})

	t.Run("empty lists encode as arrays", func(t *testing.T) {
		mockSvc := NewMockGiftLister(ctrl)
		mockTokener := NewMockGiftTokener(ctrl)
		expectCaller(mockTokener, bob)
		mockSvc.EXPECT().List(gomock.Any(), bob.UserID).Return(&models.GiftList{AsOf: asOf}, nil)

		rr := httptest.NewRecorder()
		NewListGiftsHandler(mockSvc, mockTokener).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/gifts", nil))

		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, []interface{}{}, resp["received"])
		assert.Equal(t, []interface{}{}, resp["sent"])
		assert.Equal(t, []interface{}{}, resp["unclaimed"])
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := NewMockGiftLister(ctrl)
		mockTokener := NewMockGiftTokener(ctrl)
		expectCaller(mockTokener, bob)
		mockSvc.EXPECT().List(gomock.Any(), bob.UserID).Return(nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		NewListGiftsHandler(mockSvc, mockTokener).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/gifts", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("bad claims", func(t *testing.T) {
		mockSvc := NewMockGiftLister(ctrl)
		mockTokener := NewMockGiftTokener(ctrl)
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), "token").Return(nil, errors.New("expired"))

		rr := httptest.NewRecorder()
		NewListGiftsHandler(mockSvc, mockTokener).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/gifts", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestClaimGiftHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bob := models.Identity{UserID: uuid.New(), Username: "bob"}
	giftID := uuid.New()

	newRequest := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/gifts/"+id+"/claim", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("giftID", id)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockGiftClaimer)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			id:   giftID.String(),
			mockSetup: func(m *MockGiftClaimer) {
				claimedAt := time.Now()
				m.EXPECT().Claim(gomock.Any(), giftID, bob.UserID).Return(&models.Gift{
					ID: giftID, Amount: 30, IsClaimed: true, ClaimedAt: &claimedAt,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "malformed id",
			id:           "not-a-uuid",
			mockSetup:    func(m *MockGiftClaimer) {},
			expectedCode: http.StatusNotFound,
			expectedErr:  "gift_not_found",
		},
		{
			name: "not recipient",
			id:   giftID.String(),
			mockSetup: func(m *MockGiftClaimer) {
				m.EXPECT().Claim(gomock.Any(), giftID, bob.UserID).Return(nil, services.ErrNotRecipient)
			},
			expectedCode: http.StatusForbidden,
			expectedErr:  "not_recipient",
		},
		{
			name: "already claimed",
			id:   giftID.String(),
			mockSetup: func(m *MockGiftClaimer) {
				m.EXPECT().Claim(gomock.Any(), giftID, bob.UserID).Return(nil, services.ErrAlreadyClaimed)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "already_claimed",
		},
		{
			name: "expired",
			id:   giftID.String(),
			mockSetup: func(m *MockGiftClaimer) {
				m.EXPECT().Claim(gomock.Any(), giftID, bob.UserID).Return(nil, services.ErrGiftExpired)
			},
			expectedCode: http.StatusGone,
			expectedErr:  "gift_expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockGiftClaimer(ctrl)
			mockTokener := NewMockGiftTokener(ctrl)
			expectCaller(mockTokener, bob)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			NewClaimGiftHandler(mockSvc, mockTokener).ServeHTTP(rr, newRequest(tt.id))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeError(t, rr).Code)
				return
			}

			var resp GiftResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, giftID, resp.ID)
			assert.Equal(t, models.GiftClaimed, resp.State)
		})
	}
}
