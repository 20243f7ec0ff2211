package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session snapshots the user at login time. The snapshot is NOT refreshed
// when the user row changes later; it stays valid until expiry or logout.
type Session struct {
	BaseSimple
	Token     uuid.UUID  `db:"token"`
	UserID    uuid.UUID  `db:"user_id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Role      UserRole   `db:"role"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
