// Package mailer delivers password-reset links. The SMTP transport is used
// in deployment; the log transport stands in during development and exposes
// the link as a preview, the way the original stack surfaced Ethereal URLs.
package mailer

import "context"

// Mailer sends a reset link to an address. preview is non-empty only for
// transports that expose the message out-of-band (the dev log transport).
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) (preview string, err error)
}
