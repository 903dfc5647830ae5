package services

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gift-ledger/internal/logger"
	"github.com/sbilibin2017/gw-gift-ledger/internal/models"
)

// WalletReader reads every balance of a user.
type WalletReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (map[string]int64, error)
}

// WalletService exposes balances to the presentation layer.
type WalletService struct {
	readRepo WalletReader
}

// NewWalletService creates a new WalletService.
func NewWalletService(readRepo WalletReader) *WalletService {
	return &WalletService{readRepo: readRepo}
}

// GetUserBalance returns the coins and gems held by userID. Missing wallets read as zero.
func (s *WalletService) GetUserBalance(ctx context.Context, userID uuid.UUID) (coins, gems int64, err error) {
	balances, err := s.readRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user balance", "userID", userID, "error", err)
		return 0, 0, err
	}
	return balances[models.Coins], balances[models.Gems], nil
}
