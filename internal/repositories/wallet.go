package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-gift-ledger/internal/logger"
	"github.com/sbilibin2017/gw-gift-ledger/internal/models"
)

// WalletRepository stores per-user, per-currency balances.
// Balances never go below zero: debits are applied with a conditional update.
type WalletRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletRepository {
	return &WalletRepository{db: db, txGetter: txGetter}
}

// Get returns the balance of userID in currency. A missing wallet reads as zero.
func (r *WalletRepository) Get(ctx context.Context, userID uuid.UUID, currency string) (int64, error) {
	const query = `
		SELECT balance
		FROM wallets
		WHERE user_id = $1 AND currency = $2
	`

	var balance int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, userID, currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency},
		"result", balance,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return balance, err
}

// Adjust applies delta to the balance of userID in currency and returns the new balance.
// A credit creates the wallet if needed. A debit that would leave the balance negative
// (or hits a missing wallet) changes nothing and returns sql.ErrNoRows.
func (r *WalletRepository) Adjust(ctx context.Context, userID uuid.UUID, currency string, delta int64) (int64, error) {
	if delta < 0 {
		return r.debit(ctx, userID, currency, -delta)
	}
	return r.credit(ctx, userID, currency, delta)
}

func (r *WalletRepository) credit(ctx context.Context, userID uuid.UUID, currency string, amount int64) (int64, error) {
	const query = `
		INSERT INTO wallets (wallet_id, user_id, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, currency)
		DO UPDATE SET balance = wallets.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	var balance int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, uuid.New(), userID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

func (r *WalletRepository) debit(ctx context.Context, userID uuid.UUID, currency string, amount int64) (int64, error) {
	const query = `
		UPDATE wallets
		SET balance = balance - $3, updated_at = NOW()
		WHERE user_id = $1 AND currency = $2 AND balance >= $3
		RETURNING balance
	`

	var balance int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, userID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// GetByUserID retrieves all wallets for a given user as a map[currency]balance
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	const query = `
		SELECT wallet_id, user_id, currency, balance, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var wallets []models.WalletDB

	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &wallets, query, userID)

	balances := make(map[string]int64, len(wallets))
	for _, w := range wallets {
		balances[w.Currency] = w.Balance
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", balances,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return balances, nil
}
