package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogNotifier writes messages to a structured logger instead of sending them.
// It is the development default: the confirmation link shows up in the log.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier returns a LogNotifier writing to log.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Send logs msg at INFO and returns a random message id.
func (n *LogNotifier) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	n.log.InfoContext(ctx, "notification",
		"message_id", id,
		"to", msg.To,
		"subject", msg.Subject,
		"html", msg.HTML,
	)
	return id, nil
}
