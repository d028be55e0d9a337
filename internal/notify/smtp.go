package notify

import (
	"context"
	"fmt"
	netmail "net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
)

// SMTPConfig holds the connection and sender settings for SMTPNotifier.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
	FromAddr string
}

// SMTPNotifier delivers messages over SMTP, upgrading to TLS with STARTTLS
// when the server offers it. It opens one connection per message, so a
// single notifier is safe for concurrent sends.
type SMTPNotifier struct {
	cfg  SMTPConfig
	opts []mail.Option
}

// NewSMTPNotifier validates cfg and returns an SMTPNotifier.
func NewSMTPNotifier(cfg SMTPConfig) (*SMTPNotifier, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("notify.NewSMTPNotifier: host is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if _, err := netmail.ParseAddress(cfg.FromAddr); err != nil {
		return nil, fmt.Errorf("notify.NewSMTPNotifier: from address: %w", err)
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	// Reject bad options here rather than on the first send.
	if _, err := mail.NewClient(cfg.Host, opts...); err != nil {
		return nil, fmt.Errorf("notify.NewSMTPNotifier: %w", err)
	}

	return &SMTPNotifier{cfg: cfg, opts: opts}, nil
}

// Send delivers msg. The context deadline, if any, bounds the whole SMTP
// conversation. Bodies are quoted-printable so no line exceeds the SMTP
// limit whatever the content.
func (n *SMTPNotifier) Send(ctx context.Context, msg Message) (string, error) {
	to, err := netmail.ParseAddress(msg.To)
	if err != nil {
		return "", fmt.Errorf("notify.SMTPNotifier.Send: %w: %v", ErrInvalidRecipient, err)
	}

	m := mail.NewMsg(mail.WithEncoding(mail.EncodingQP), mail.WithCharset(mail.CharsetUTF8))
	if err := m.FromFormat(n.cfg.FromName, n.cfg.FromAddr); err != nil {
		return "", fmt.Errorf("notify.SMTPNotifier.Send: from: %w", err)
	}
	if err := m.To(to.Address); err != nil {
		return "", fmt.Errorf("notify.SMTPNotifier.Send: %w: %v", ErrInvalidRecipient, err)
	}
	id := uuid.NewString() + "@" + n.cfg.Host
	m.SetMessageIDWithValue(id)
	m.SetDate()
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("notify.SMTPNotifier.Send: %w", err)
	}
	opts := n.opts
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return "", fmt.Errorf("notify.SMTPNotifier.Send: %w", context.DeadlineExceeded)
		}
		opts = append(opts[:len(opts):len(opts)], mail.WithTimeout(remaining))
	}
	client, err := mail.NewClient(n.cfg.Host, opts...)
	if err != nil {
		return "", fmt.Errorf("notify.SMTPNotifier.Send: client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return "", fmt.Errorf("notify.SMTPNotifier.Send: %w", err)
	}

	return "<" + id + ">", nil
}
