package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxGiftMessageLength is the maximum number of characters in a gift message.
const MaxGiftMessageLength = 200

// GiftState is the effective state of a gift. It is never stored.
type GiftState string

const (
	GiftPending GiftState = "pending"
	GiftClaimed GiftState = "claimed"
	GiftExpired GiftState = "expired"
)

// Gift represents a gift row in the database.
// While unclaimed the amount belongs to neither sender nor recipient.
type Gift struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	SenderID          uuid.UUID  `json:"sender_id" db:"sender_id"`
	SenderUsername    string     `json:"sender_username" db:"sender_username"`
	RecipientID       uuid.UUID  `json:"recipient_id" db:"recipient_id"`
	RecipientUsername string     `json:"recipient_username" db:"recipient_username"`
	Currency          string     `json:"currency" db:"currency"`
	Amount            int64      `json:"amount" db:"amount"`
	Message           *string    `json:"message,omitempty" db:"message"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt         time.Time  `json:"expires_at" db:"expires_at"`
	IsClaimed         bool       `json:"is_claimed" db:"is_claimed"`
	ClaimedAt         *time.Time `json:"claimed_at,omitempty" db:"claimed_at"`
}

// State derives the gift state at the given instant. Claimed wins over expiry.
func (g *Gift) State(now time.Time) GiftState {
	switch {
	case g.IsClaimed:
		return GiftClaimed
	case now.Before(g.ExpiresAt):
		return GiftPending
	default:
		return GiftExpired
	}
}

// GiftList is the result of listing a user's gifts.
type GiftList struct {
	Received  []Gift
	Sent      []Gift
	Unclaimed []Gift
	AsOf      time.Time // instant the unclaimed subset was computed against
}
