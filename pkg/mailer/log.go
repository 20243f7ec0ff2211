package mailer

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer is the development transport: it logs the link instead of
// sending it, and hands it back as the preview URL.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, to, resetLink string) (string, error) {
	m.log.Info("Password reset email (dev transport)",
		zap.String("to", to),
		zap.String("reset_link", resetLink),
	)
	return resetLink, nil
}
