// internal/adapters/mail/sender.go
package mail

import (
	"context"
	"fmt"
	"net/mail"

	"go.uber.org/zap"
)

type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a single rendered message through an email provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender picks the provider implementation named by provider.
func NewSender(provider, resendKey, sendgridKey, from string, logger *zap.Logger) (Sender, error) {
	if _, err := mail.ParseAddress(from); err != nil {
		return nil, fmt.Errorf("mail: invalid sender address %q: %w", from, err)
	}
	switch provider {
	case "resend":
		return NewResendSender(resendKey, from), nil
	case "sendgrid":
		return NewSendGridSender(sendgridKey, from), nil
	case "log", "":
		return NewLogSender(logger), nil
	default:
		return nil, fmt.Errorf("mail: unknown provider %q", provider)
	}
}

// LogSender only logs messages. Used in development and tests.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("email not delivered, log provider",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	)
	return nil
}
