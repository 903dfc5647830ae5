package repositories

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-gift-ledger/internal/logger"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	require.NoError(t, ApplyMigrations(ctx, db, filepath.Join("..", "..", "migrations")))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func insertUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()
	userID := uuid.New()
	_, err := db.Exec(`INSERT INTO users (user_id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
		userID, username, username+"@example.com", "hash")
	require.NoError(t, err)
	return userID
}

func getBalance(t *testing.T, db *sqlx.DB, userID uuid.UUID, currency string) int64 {
	t.Helper()
	var balance int64
	err := db.Get(&balance, `SELECT balance FROM wallets WHERE user_id=$1 AND currency=$2`, userID, currency)
	require.NoError(t, err)
	return balance
}
