package handlers

//go:generate mockgen -source=balance.go -destination=mock_balance.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gift-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-gift-ledger/internal/logger"
)

// BalanceTokener defines only the methods needed by this handler.
type BalanceTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Balancer defines the interface that the service must implement.
type Balancer interface {
	GetUserBalance(ctx context.Context, userID uuid.UUID) (coins, gems int64, err error)
}

// CurrencyBalance represents balances for the game currencies
// swagger:model CurrencyBalance
type CurrencyBalance struct {
	// Coins held
	// default: 100
	Coins int64 `json:"coins"`

	// Gems held
	// default: 5
	Gems int64 `json:"gems"`
}

// BalanceResponse represents a successful response with user balances
// swagger:model BalanceResponse
type BalanceResponse struct {
	// User balances
	Balance *CurrencyBalance `json:"balance"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching user balances.
// @Summary Get user balance
// @Description Returns coins and gems of the authenticated player
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "User balance"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(
	balancer Balancer,
	tokenGetter BalanceTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized balance request: missing or invalid token")
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		coins, gems, err := balancer.GetUserBalance(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "userID", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, BalanceResponse{
			Balance: &CurrencyBalance{Coins: coins, Gems: gems},
		})
	}
}
