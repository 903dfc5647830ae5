package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gift-ledger/internal/logger"
	"github.com/sbilibin2017/gw-gift-ledger/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidUserData    = errors.New("username, password and email are required")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username string, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string, email string) (uuid.UUID, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// StartingBalance is credited to every new account.
type StartingBalance struct {
	Coins int64
	Gems  int64
}

// DefaultStartingBalance matches the balance a new player profile starts with.
var DefaultStartingBalance = StartingBalance{Coins: 100, Gems: 0}

// AuthService handles registration and login.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	jwt      JWTGenerator
	balances BalanceStore
	tx       TxRunner
	starting StartingBalance
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	jwt JWTGenerator,
	balances BalanceStore,
	tx TxRunner,
	starting StartingBalance,
) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		balances: balances,
		tx:       tx,
		starting: starting,
	}
}

// Register registers a new user with the starting balance and returns its id.
// The user row and the starting wallets are written in one transaction.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) (uuid.UUID, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" || email == "" {
		return uuid.Nil, ErrInvalidUserData
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, username, email)
	switch {
	case err == nil && user != nil:
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return uuid.Nil, ErrUserAlreadyExists
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}

	var userID uuid.UUID
	err = svc.tx.Do(ctx, func(ctx context.Context) error {
		id, err := svc.writer.Save(ctx, username, string(hashedPassword), email)
		if err != nil {
			logger.Log.Errorw("failed to save user", "err", err)
			return err
		}

		for _, c := range []struct {
			currency string
			amount   int64
		}{
			{models.Coins, svc.starting.Coins},
			{models.Gems, svc.starting.Gems},
		} {
			if c.amount <= 0 {
				continue
			}
			if _, err := svc.balances.Adjust(ctx, id, c.currency, c.amount); err != nil {
				logger.Log.Errorw("failed to open starting wallet", "user_id", id, "currency", c.currency, "err", err)
				return fmt.Errorf("open %s wallet: %w", c.currency, err)
			}
		}

		userID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	logger.Log.Infow("user registered", "user_id", userID, "username", username)
	return userID, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("user does not exist", "username", username)
			return "", ErrUserDoesNotExist
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
