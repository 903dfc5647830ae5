package models

// Gift event types published to the event stream.
const (
	GiftEventSent    = "gift_sent"
	GiftEventClaimed = "gift_claimed"
)

// GiftEvent represents a ledger movement, published after the database transaction commits.
type GiftEvent struct {
	EventID     string `json:"event_id"`     // EventID is a unique identifier for the event.
	Type        string `json:"type"`         // Type is gift_sent or gift_claimed.
	GiftID      string `json:"gift_id"`      // GiftID identifies the gift the event belongs to.
	SenderID    string `json:"sender_id"`    // SenderID is the user whose balance was debited.
	RecipientID string `json:"recipient_id"` // RecipientID is the user who may claim the gift.
	Currency    string `json:"currency"`     // Currency is coins or gems.
	Amount      int64  `json:"amount"`       // Amount is the number of units moved.
	Timestamp   int64  `json:"timestamp"`    // Timestamp is the Unix time (seconds) of the movement.
}
