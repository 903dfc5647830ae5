package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-gift-ledger/internal/logger"
	"github.com/sbilibin2017/gw-gift-ledger/internal/models"
)

const giftColumns = `id, sender_id, sender_username, recipient_id, recipient_username,
	currency, amount, message, created_at, expires_at, is_claimed, claimed_at`

// GiftRepository stores gift records. Records are never deleted.
type GiftRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewGiftRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *GiftRepository {
	return &GiftRepository{db: db, txGetter: txGetter}
}

// Create inserts a new gift and returns the stored row.
func (r *GiftRepository) Create(ctx context.Context, gift *models.Gift) (*models.Gift, error) {
	query := `
		INSERT INTO gifts (` + giftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + giftColumns

	args := []any{
		gift.ID, gift.SenderID, gift.SenderUsername, gift.RecipientID, gift.RecipientUsername,
		gift.Currency, gift.Amount, gift.Message, gift.CreatedAt, gift.ExpiresAt, gift.IsClaimed, gift.ClaimedAt,
	}

	var created models.Gift
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", created.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID returns the gift with the given id or sql.ErrNoRows.
func (r *GiftRepository) GetByID(ctx context.Context, giftID uuid.UUID) (*models.Gift, error) {
	query := `SELECT ` + giftColumns + ` FROM gifts WHERE id = $1`

	var gift models.Gift
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &gift, query, giftID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{giftID},
		"result", gift.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &gift, nil
}

// MarkClaimed flips is_claimed from false to true. It is a compare-and-set:
// when the gift is missing or already claimed nothing changes and sql.ErrNoRows is returned.
func (r *GiftRepository) MarkClaimed(ctx context.Context, giftID uuid.UUID, claimedAt time.Time) (*models.Gift, error) {
	query := `
		UPDATE gifts
		SET is_claimed = TRUE, claimed_at = $2
		WHERE id = $1 AND is_claimed = FALSE
		RETURNING ` + giftColumns

	var gift models.Gift
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &gift, query, giftID, claimedAt)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{giftID, claimedAt},
		"result", gift.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &gift, nil
}

// ListBySender returns gifts sent by userID, newest first.
func (r *GiftRepository) ListBySender(ctx context.Context, userID uuid.UUID) ([]models.Gift, error) {
	return r.list(ctx, `SELECT `+giftColumns+` FROM gifts WHERE sender_id = $1 ORDER BY created_at DESC, id DESC`, userID)
}

// ListByRecipient returns gifts addressed to userID, newest first.
func (r *GiftRepository) ListByRecipient(ctx context.Context, userID uuid.UUID) ([]models.Gift, error) {
	return r.list(ctx, `SELECT `+giftColumns+` FROM gifts WHERE recipient_id = $1 ORDER BY created_at DESC, id DESC`, userID)
}

func (r *GiftRepository) list(ctx context.Context, query string, userID uuid.UUID) ([]models.Gift, error) {
	gifts := []models.Gift{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &gifts, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(gifts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return gifts, nil
}
