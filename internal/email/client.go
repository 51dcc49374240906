// Package email provides implementations of the notification port used to
// deliver 2FA codes.
package email

import (
	"context"

	"go.uber.org/zap"

	"github.com/hexvault/authd/internal/domain"
)

// LogClient writes outbound mail to the log instead of a real transport.
// Used in development and tests; production deployments inject their own
// domain.EmailClient.
type LogClient struct {
	log *zap.Logger
}

// NewLogClient returns a client logging through log.
func NewLogClient(log *zap.Logger) *LogClient {
	return &LogClient{log: log}
}

// Send records the message. The body carries the 2FA code, so it is logged at
// debug level only.
func (c *LogClient) Send(_ context.Context, recipient domain.Email, subject, body string) error {
	c.log.Info("sending email",
		zap.String("recipient", recipient.String()),
		zap.String("subject", subject),
	)
	c.log.Debug("email body", zap.String("body", body))
	return nil
}

var _ domain.EmailClient = (*LogClient)(nil)
