package repository

import (
	"context"
	"fmt"

	"inventory-backend/internal/data/entity"
	"inventory-backend/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ResetRepository interface {
	Create(ctx context.Context, reset *entity.PasswordReset) error
	Consume(ctx context.Context, id uuid.UUID) (bool, error)
}

type resetRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResetRepository(db database.PgxIface, log *zap.Logger) ResetRepository {
	return &resetRepository{
		db:  db,
		log: log.With(zap.String("repository", "reset")),
	}
}

func (r *resetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	query := `
		INSERT INTO password_resets (id, user_id, expires_at, is_used, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		reset.ID,
		reset.UserID,
		reset.ExpiresAt,
		reset.IsUsed,
		reset.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create password reset",
			zap.Error(err),
			zap.String("user_id", reset.UserID.String()),
		)
		return fmt.Errorf("create password reset: %w", err)
	}

	return nil
}

// Consume marks the reset row as used in a single conditional update, so a
// token can be redeemed at most once. Returns false if the row is missing,
// expired, or already used.
func (r *resetRepository) Consume(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE password_resets
		SET is_used = true
		WHERE id = $1
		  AND is_used = false
		  AND expires_at > NOW()
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to consume password reset",
			zap.Error(err),
			zap.String("reset_id", id.String()),
		)
		return false, fmt.Errorf("consume password reset %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
