package mail

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGridSender struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func NewSendGridSender(apiKey, from string) *SendGridSender {
	addr, err := mail.ParseAddress(from)
	if err != nil {
		addr = &mail.Address{Address: from}
	}
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail(addr.Name, addr.Address),
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("sendgrid: message has no recipients")
	}
	m := sgmail.NewSingleEmail(s.from, msg.Subject, sgmail.NewEmail("", msg.To[0]), msg.Text, msg.HTML)
	if len(msg.To) > 1 {
		p := m.Personalizations[0]
		for _, to := range msg.To[1:] {
			p.AddTos(sgmail.NewEmail("", to))
		}
	}
	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
