package handlers

//go:generate mockgen -source=gift.go -destination=mock_gift.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-gift-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-gift-ledger/internal/logger"
	"github.com/sbilibin2017/gw-gift-ledger/internal/models"
	"github.com/sbilibin2017/gw-gift-ledger/internal/services"
)

// GiftTokener defines the token methods needed by the gift handlers.
type GiftTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// GiftResponse is a gift together with its state at response time
// swagger:model GiftResponse
type GiftResponse struct {
	models.Gift

	// One of pending, claimed, expired
	// default: pending
	State models.GiftState `json:"state"`
}

func newGiftResponse(g models.Gift, now time.Time) GiftResponse {
	return GiftResponse{Gift: g, State: g.State(now)}
}

func newGiftResponses(gifts []models.Gift, now time.Time) []GiftResponse {
	out := make([]GiftResponse, 0, len(gifts))
	for _, g := range gifts {
		out = append(out, newGiftResponse(g, now))
	}
	return out
}

var giftErrors = []struct {
	err     error
	status  int
	code    string
	message string
}{
	{services.ErrUserNotFound, http.StatusNotFound, "user_not_found", "Recipient not found"},
	{services.ErrSelfGiftNotAllowed, http.StatusBadRequest, "self_gift", "You cannot send a gift to yourself"},
	{services.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount", "Amount must be a positive whole number"},
	{services.ErrInvalidCurrency, http.StatusBadRequest, "invalid_currency", "Currency must be coins or gems"},
	{services.ErrMessageTooLong, http.StatusBadRequest, "message_too_long", "Message must be at most 200 characters"},
	{services.ErrInsufficientFunds, http.StatusConflict, "insufficient_funds", "Insufficient funds"},
	{services.ErrGiftNotFound, http.StatusNotFound, "gift_not_found", "Gift not found"},
	{services.ErrNotRecipient, http.StatusForbidden, "not_recipient", "This gift is not addressed to you"},
	{services.ErrAlreadyClaimed, http.StatusConflict, "already_claimed", "Gift already claimed"},
	{services.ErrGiftExpired, http.StatusGone, "gift_expired", "Gift expired"},
}

// writeGiftError translates ledger errors into HTTP responses.
func writeGiftError(w http.ResponseWriter, err error) {
	for _, ge := range giftErrors {
		if errors.Is(err, ge.err) {
			writeError(w, ge.status, ge.code, ge.message)
			return
		}
	}
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
}

// identityFromRequest authenticates the caller, writing 401 on failure.
func identityFromRequest(w http.ResponseWriter, r *http.Request, tokenGetter GiftTokener) (models.Identity, bool) {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("unauthorized gift request", "error", err)
		writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return models.Identity{}, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return models.Identity{}, false
	}

	return models.Identity{UserID: claims.UserID, Username: claims.Username}, true
}
