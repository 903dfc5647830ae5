package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported in-game currencies
const (
	Coins = "coins"
	Gems  = "gems"
)

// IsValidCurrency reports whether c is one of the supported currencies.
func IsValidCurrency(c string) bool {
	return c == Coins || c == Gems
}

// WalletDB represents a wallet row in the database
type WalletDB struct {
	WalletID  uuid.UUID `json:"wallet_id" db:"wallet_id"`   // Unique wallet identifier
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Identifier of the wallet's owner
	Currency  string    `json:"currency" db:"currency"`     // Currency code (coins or gems)
	Balance   int64     `json:"balance" db:"balance"`       // Current balance, never negative
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the wallet was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last wallet update
}
