package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset tracks one issued reset token. The row ID doubles as the
// token's jti claim, which is how redemption is kept single-use.
type PasswordReset struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	IsUsed    bool      `db:"is_used"`
}
