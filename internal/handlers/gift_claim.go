package handlers

//go:generate mockgen -source=gift_claim.go -destination=mock_gift_claim.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gift-ledger/internal/models"
	"github.com/sbilibin2017/gw-gift-ledger/internal/services"
)

// GiftClaimer defines the interface that the service must implement.
type GiftClaimer interface {
	Claim(ctx context.Context, giftID, claimerID uuid.UUID) (*models.Gift, error)
}

// NewClaimGiftHandler returns an HTTP handler that claims a gift.
// @Summary Claim a gift
// @Description Credits the gift amount to the recipient. Each gift can be claimed once, before it expires.
// @Tags gifts
// @Produce json
// @Param giftID path string true "Gift id"
// @Success 200 {object} handlers.GiftResponse "Gift claimed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Gift addressed to another user"
// @Failure 404 {object} handlers.ErrorResponse "Gift not found"
// @Failure 409 {object} handlers.ErrorResponse "Gift already claimed"
// @Failure 410 {object} handlers.ErrorResponse "Gift expired"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /gifts/{giftID}/claim [post]
// @Security BearerAuth
func NewClaimGiftHandler(svc GiftClaimer, tokenGetter GiftTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claimer, ok := identityFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		giftID, err := uuid.Parse(chi.URLParam(r, "giftID"))
		if err != nil {
			writeGiftError(w, services.ErrGiftNotFound)
			return
		}

		gift, err := svc.Claim(r.Context(), giftID, claimer.UserID)
		if err != nil {
			writeGiftError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newGiftResponse(*gift, time.Now()))
	}
}
