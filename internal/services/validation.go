package services

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-gift-ledger/internal/models"
)

// ParseAmount parses a user-entered gift amount. Only base-10 positive integers are accepted.
func ParseAmount(raw string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}

// NormalizeMessage trims a gift message. Blank messages become nil.
func NormalizeMessage(raw string) (*string, error) {
	msg := strings.TrimSpace(raw)
	if msg == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(msg) > models.MaxGiftMessageLength {
		return nil, ErrMessageTooLong
	}
	return &msg, nil
}
