package mailer

import (
	"context"
	"log/slog"

	"table-reservation/internal/usecase/commands"
)

// LogMailer writes messages to the log instead of delivering them. Used in development.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg commands.Message) error {
	m.logger.InfoContext(ctx, "[DEV MAIL] confirmation email",
		"to", msg.To,
		"subject", msg.Subject,
		"text", msg.Text,
	)
	return nil
}
