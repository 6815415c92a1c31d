package id

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 hex characters (a v4 UUID without separators).
func NewID32() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
