package handlers

//go:generate mockgen -source=gift_list.go -destination=mock_gift_list.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gift-ledger/internal/models"
)

// GiftLister defines the interface that the service must implement.
type GiftLister interface {
	List(ctx context.Context, userID uuid.UUID) (*models.GiftList, error)
}

// ListGiftsResponse represents the gifts of the authenticated player
// swagger:model ListGiftsResponse
type ListGiftsResponse struct {
	Received []GiftResponse `json:"received"`
	Sent     []GiftResponse `json:"sent"`

	// Received gifts that can still be claimed
	Unclaimed []GiftResponse `json:"unclaimed"`

	// default: 1
	UnclaimedCount int `json:"unclaimed_count"`

	// Time the states were computed at
	AsOf time.Time `json:"as_of"`
}

// NewListGiftsHandler returns an HTTP handler listing the caller's gifts.
// @Summary List gifts
// @Description Returns received and sent gifts, newest first, and the received gifts still claimable
// @Tags gifts
// @Produce json
// @Success 200 {object} handlers.ListGiftsResponse "Gifts"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /gifts [get]
// @Security BearerAuth
func NewListGiftsHandler(svc GiftLister, tokenGetter GiftTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := identityFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		list, err := svc.List(r.Context(), user.UserID)
		if err != nil {
			writeGiftError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ListGiftsResponse{
			Received:       newGiftResponses(list.Received, list.AsOf),
			Sent:           newGiftResponses(list.Sent, list.AsOf),
			Unclaimed:      newGiftResponses(list.Unclaimed, list.AsOf),
			UnclaimedCount: len(list.Unclaimed),
			AsOf:           list.AsOf,
		})
	}
}
