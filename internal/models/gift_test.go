package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGift_State(t *testing.T) {
	expiresAt := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	claimedAt := expiresAt.Add(-time.Hour)

	tests := []struct {
		name string
		gift Gift
		now  time.Time
		want GiftState
	}{
		{"pending before expiry", Gift{ExpiresAt: expiresAt}, expiresAt.Add(-time.Nanosecond), GiftPending},
		{"expired at expires_at", Gift{ExpiresAt: expiresAt}, expiresAt, GiftExpired},
		{"expired after expires_at", Gift{ExpiresAt: expiresAt}, expiresAt.Add(time.Hour), GiftExpired},
		{"claimed before expiry", Gift{ExpiresAt: expiresAt, IsClaimed: true, ClaimedAt: &claimedAt}, claimedAt, GiftClaimed},
		{"claimed stays claimed after expiry", Gift{ExpiresAt: expiresAt, IsClaimed: true, ClaimedAt: &claimedAt}, expiresAt.Add(48 * time.Hour), GiftClaimed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.gift.State(tt.now))
		})
	}
}

func TestIsValidCurrency(t *testing.T) {
	assert.True(t, IsValidCurrency(Coins))
	assert.True(t, IsValidCurrency(Gems))
	assert.False(t, IsValidCurrency("COINS"))
	assert.False(t, IsValidCurrency(""))
}
