// Package mailer delivers report emails through an SMTP relay.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"moneybrief/internal/config"

	"github.com/wneessen/go-mail"
)

// ErrNotConfigured is returned when no SMTP credentials are set
var ErrNotConfigured = errors.New("mailer: smtp not configured")

// Attachment is a file attached to a message
type Attachment struct {
	Name string
	Data []byte
}

// Message is one outgoing HTML email
type Message struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Sender delivers messages
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTP is a Sender backed by go-mail
type SMTP struct {
	cfg config.MailConfig
}

// NewSMTP creates an SMTP sender
func NewSMTP(cfg config.MailConfig) *SMTP {
	return &SMTP{cfg: cfg}
}

// Send delivers msg through the configured relay
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if !s.cfg.IsEnabled() {
		return ErrNotConfigured
	}
	m, err := s.build(msg)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	}
	if s.cfg.SSL {
		opts = append(opts, mail.WithSSL())
	}
	if s.cfg.TimeoutMS > 0 {
		opts = append(opts, mail.WithTimeout(time.Duration(s.cfg.TimeoutMS)*time.Millisecond))
	}
	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (s *SMTP) build(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.cfg.Sender()); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	for _, a := range msg.Attachments {
		if err := m.AttachReader(a.Name, bytes.NewReader(a.Data)); err != nil {
			return nil, fmt.Errorf("attach %s: %w", a.Name, err)
		}
	}
	return m, nil
}
