// Package notify delivers outbound messages to a single recipient and renders
// the localized invitation email. Delivery is best-effort: callers decide what
// a failure means.
package notify

import (
	"context"
	"errors"
	"net/textproto"

	"github.com/wneessen/go-mail"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Notifier sends a message to one address and returns the transport-assigned
// message id. Implementations must be safe for concurrent use.
type Notifier interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// ErrInvalidRecipient is returned when the recipient address cannot be used.
// Retrying will not help.
var ErrInvalidRecipient = errors.New("invalid recipient")

// IsPermanent reports whether err will fail again on retry: a rejected
// recipient or any SMTP 5xx reply.
func IsPermanent(err error) bool {
	if errors.Is(err, ErrInvalidRecipient) {
		return true
	}
	var sendErr *mail.SendError
	if errors.As(err, &sendErr) {
		code := sendErr.ErrorCode()
		return code >= 500 && code < 600
	}
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		return tpErr.Code >= 500 && tpErr.Code < 600
	}
	return false
}
