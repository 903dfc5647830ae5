package services

//go:generate mockgen -source=gift.go -destination=mock_gift.go -package=services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gift-ledger/internal/logger"
	"github.com/sbilibin2017/gw-gift-ledger/internal/models"
	"github.com/segmentio/kafka-go"
)

// DefaultGiftTTL is how long a gift stays claimable when no TTL is configured.
const DefaultGiftTTL = 7 * 24 * time.Hour

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfGiftNotAllowed = errors.New("cannot send a gift to yourself")
	ErrInvalidAmount      = errors.New("amount must be a positive integer")
	ErrInvalidCurrency    = errors.New("unsupported currency")
	ErrMessageTooLong     = errors.New("gift message is too long")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrGiftNotFound       = errors.New("gift not found")
	ErrNotRecipient       = errors.New("gift is addressed to another user")
	ErrAlreadyClaimed     = errors.New("gift already claimed")
	ErrGiftExpired        = errors.New("gift expired")
)

// GiftStore holds gift records.
type GiftStore interface {
	Create(ctx context.Context, gift *models.Gift) (*models.Gift, error)                          // Inserts a new gift
	GetByID(ctx context.Context, giftID uuid.UUID) (*models.Gift, error)                          // Returns sql.ErrNoRows when missing
	MarkClaimed(ctx context.Context, giftID uuid.UUID, claimedAt time.Time) (*models.Gift, error) // Compare-and-set on is_claimed
	ListBySender(ctx context.Context, userID uuid.UUID) ([]models.Gift, error)                    // Newest first
	ListByRecipient(ctx context.Context, userID uuid.UUID) ([]models.Gift, error)                 // Newest first
}

// BalanceStore holds per-user balances.
type BalanceStore interface {
	Get(ctx context.Context, userID uuid.UUID, currency string) (int64, error)                 // Missing wallet reads as zero
	Adjust(ctx context.Context, userID uuid.UUID, currency string, delta int64) (int64, error) // Returns sql.ErrNoRows instead of going negative
}

// UserDirectory resolves usernames to accounts.
type UserDirectory interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserIDCache caches username lookups.
type UserIDCache interface {
	GetUserID(ctx context.Context, username string) (uuid.UUID, error)
	SetUserID(ctx context.Context, username string, userID uuid.UUID) error
}

// TxRunner runs a unit of work atomically.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// GiftService moves currency between players through claimable gifts.
//
// Send debits the sender and records the gift in one transaction; the amount is then
// held by the gift until the recipient claims it. Claim flips is_claimed with a
// compare-and-set before crediting, so each gift is credited at most once. Expiry is
// derived from expires_at on every read and never stored. Expired gifts are not refunded.
type GiftService struct {
	gifts       GiftStore
	balances    BalanceStore
	users       UserDirectory
	userCache   UserIDCache
	tx          TxRunner
	kafkaWriter KafkaWriter
	ttl         time.Duration
	now         func() time.Time
}

// NewGiftService creates a new GiftService. A non-positive ttl falls back to DefaultGiftTTL.
// userCache and kafkaWriter are optional.
func NewGiftService(
	gifts GiftStore,
	balances BalanceStore,
	users UserDirectory,
	userCache UserIDCache,
	tx TxRunner,
	kafkaWriter KafkaWriter,
	ttl time.Duration,
) *GiftService {
	if ttl <= 0 {
		ttl = DefaultGiftTTL
	}
	return &GiftService{
		gifts:       gifts,
		balances:    balances,
		users:       users,
		userCache:   userCache,
		tx:          tx,
		kafkaWriter: kafkaWriter,
		ttl:         ttl,
		now:         time.Now,
	}
}

// Send creates a pending gift from sender to the user named recipientUsername.
// Checks run in order and the first failing one decides the error:
// unknown recipient, self gift, non-positive amount, then insufficient funds.
func (s *GiftService) Send(
	ctx context.Context,
	sender models.Identity,
	recipientUsername string,
	currency string,
	amount int64,
	message string,
) (*models.Gift, error) {
	recipientID, recipientName, err := s.resolveRecipient(ctx, recipientUsername)
	if err != nil {
		return nil, err
	}
	if recipientID == sender.UserID {
		return nil, ErrSelfGiftNotAllowed
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !models.IsValidCurrency(currency) {
		return nil, ErrInvalidCurrency
	}
	msg, err := NormalizeMessage(message)
	if err != nil {
		return nil, err
	}

	// Advisory only: the debit below enforces the non-negative balance.
	balance, err := s.balances.Get(ctx, sender.UserID, currency)
	if err != nil {
		logger.Log.Errorw("failed to read sender balance", "userID", sender.UserID, "currency", currency, "error", err)
		return nil, fmt.Errorf("read sender balance: %w", err)
	}
	if balance < amount {
		return nil, ErrInsufficientFunds
	}

	now := s.now()
	gift := &models.Gift{
		ID:                uuid.New(),
		SenderID:          sender.UserID,
		SenderUsername:    sender.Username,
		RecipientID:       recipientID,
		RecipientUsername: recipientName,
		Currency:          currency,
		Amount:            amount,
		Message:           msg,
		CreatedAt:         now,
		ExpiresAt:         now.Add(s.ttl),
	}

	var created *models.Gift
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.balances.Adjust(ctx, sender.UserID, currency, -amount); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInsufficientFunds
			}
			return fmt.Errorf("debit sender: %w", err)
		}

		created, err = s.gifts.Create(ctx, gift)
		if err != nil {
			return fmt.Errorf("create gift: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			logger.Log.Errorw("failed to send gift", "giftID", gift.ID, "senderID", sender.UserID, "amount", amount, "currency", currency, "error", err)
		}
		return nil, err
	}

	s.publishGiftEvent(ctx, models.GiftEventSent, created, now)
	return created, nil
}

// Claim credits the gift amount to claimerID and marks the gift claimed.
// Of any number of concurrent claims for the same gift exactly one succeeds;
// the others get ErrAlreadyClaimed and change nothing.
func (s *GiftService) Claim(ctx context.Context, giftID, claimerID uuid.UUID) (*models.Gift, error) {
	now := s.now()

	var claimed *models.Gift
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		gift, err := s.gifts.GetByID(ctx, giftID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrGiftNotFound
			}
			return fmt.Errorf("get gift: %w", err)
		}

		switch {
		case gift.RecipientID != claimerID:
			return ErrNotRecipient
		case gift.IsClaimed:
			return ErrAlreadyClaimed
		case !now.Before(gift.ExpiresAt):
			return ErrGiftExpired
		}

		claimed, err = s.gifts.MarkClaimed(ctx, giftID, now)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAlreadyClaimed
			}
			return fmt.Errorf("mark gift claimed: %w", err)
		}

		if _, err := s.balances.Adjust(ctx, claimerID, claimed.Currency, claimed.Amount); err != nil {
			logger.Log.Errorw("claimed gift was not credited, reconciliation required",
				"giftID", giftID, "recipientID", claimerID, "currency", claimed.Currency, "amount", claimed.Amount, "error", err)
			return fmt.Errorf("credit recipient: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishGiftEvent(ctx, models.GiftEventClaimed, claimed, now)
	return claimed, nil
}

// List returns the gifts received and sent by userID, newest first, and the
// received gifts that are still claimable.
func (s *GiftService) List(ctx context.Context, userID uuid.UUID) (*models.GiftList, error) {
	received, err := s.gifts.ListByRecipient(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list received gifts", "userID", userID, "error", err)
		return nil, fmt.Errorf("list received gifts: %w", err)
	}

	sent, err := s.gifts.ListBySender(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list sent gifts", "userID", userID, "error", err)
		return nil, fmt.Errorf("list sent gifts: %w", err)
	}

	now := s.now()
	unclaimed := make([]models.Gift, 0, len(received))
	for i := range received {
		if received[i].State(now) == models.GiftPending {
			unclaimed = append(unclaimed, received[i])
		}
	}

	return &models.GiftList{
		Received:  received,
		Sent:      sent,
		Unclaimed: unclaimed,
		AsOf:      now,
	}, nil
}

// resolveRecipient maps a username to an account id, consulting the cache first.
func (s *GiftService) resolveRecipient(ctx context.Context, username string) (uuid.UUID, string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return uuid.Nil, "", ErrUserNotFound
	}

	if s.userCache != nil {
		if userID, err := s.userCache.GetUserID(ctx, username); err == nil {
			return userID, username, nil
		}
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, "", ErrUserNotFound
		}
		logger.Log.Errorw("failed to resolve recipient", "username", username, "error", err)
		return uuid.Nil, "", fmt.Errorf("resolve recipient: %w", err)
	}

	if s.userCache != nil {
		if err := s.userCache.SetUserID(ctx, user.Username, user.UserID); err != nil {
			logger.Log.Errorw("failed to cache user id", "username", user.Username, "error", err)
		}
	}

	return user.UserID, user.Username, nil
}

// publishGiftEvent publishes a gift movement to Kafka. Failures are logged only.
// The gift is already committed, so a cancelled caller does not drop the event.
func (s *GiftService) publishGiftEvent(ctx context.Context, eventType string, gift *models.Gift, at time.Time) {
	ctx = context.WithoutCancel(ctx)

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "gift_id", gift.ID, "type", eventType)
		return
	}

	event := models.GiftEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		GiftID:      gift.ID.String(),
		SenderID:    gift.SenderID.String(),
		RecipientID: gift.RecipientID.String(),
		Currency:    gift.Currency,
		Amount:      gift.Amount,
		Timestamp:   at.Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal gift event for Kafka", "gift_id", event.GiftID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.GiftID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish gift event to Kafka", "gift_id", event.GiftID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Gift event published to Kafka", "gift_id", event.GiftID, "type", eventType, "amount", event.Amount)
	}
}
