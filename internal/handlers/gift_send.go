package handlers

//go:generate mockgen -source=gift_send.go -destination=mock_gift_send.go -package=handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-gift-ledger/internal/models"
	"github.com/sbilibin2017/gw-gift-ledger/internal/services"
)

// GiftSender defines the interface that the service must implement.
type GiftSender interface {
	Send(ctx context.Context, sender models.Identity, recipientUsername, currency string, amount int64, message string) (*models.Gift, error)
}

// SendGiftRequest represents the JSON body for sending a gift
// swagger:model SendGiftRequest
type SendGiftRequest struct {
	// Recipient username
	// required: true
	// default: jane_doe
	Recipient string `json:"recipient"`

	// coins or gems
	// required: true
	// default: coins
	Currency string `json:"currency"`

	// Positive whole amount, as a number or a string
	// required: true
	// default: 30
	Amount json.RawMessage `json:"amount" swaggertype:"string"`

	// Optional note, at most 200 characters
	// default: Good game!
	Message string `json:"message,omitempty"`
}

// amountText returns the amount as the user typed it.
func (req SendGiftRequest) amountText() string {
	raw := bytes.TrimSpace(req.Amount)
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// NewSendGiftHandler returns an HTTP handler that sends a gift.
// @Summary Send a gift
// @Description Debits the sender and creates a gift the recipient can claim until it expires
// @Tags gifts
// @Accept json
// @Produce json
// @Param sendGiftRequest body handlers.SendGiftRequest true "Gift to send"
// @Success 201 {object} handlers.GiftResponse "Gift created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, currency, message or self gift"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Recipient not found"
// @Failure 409 {object} handlers.ErrorResponse "Insufficient funds"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /gifts [post]
// @Security BearerAuth
func NewSendGiftHandler(svc GiftSender, tokenGetter GiftTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sender, ok := identityFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		var req SendGiftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
			return
		}

		// Unparseable text becomes 0, which Send rejects after the recipient checks.
		amount, _ := services.ParseAmount(req.amountText())

		gift, err := svc.Send(r.Context(), sender, req.Recipient, req.Currency, amount, req.Message)
		if err != nil {
			writeGiftError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, newGiftResponse(*gift, time.Now()))
	}
}
