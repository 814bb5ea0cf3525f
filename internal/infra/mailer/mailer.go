package mailer

import (
	"fmt"
	"log/slog"
	"strings"

	"table-reservation/internal/pkg/config"
	"table-reservation/internal/usecase/commands"
)

const (
	DriverLog        = "log"
	DriverSMTP       = "smtp"
	DriverMailerSend = "mailersend"
)

// New returns the notifier selected by MAIL_DRIVER.
func New(cfg config.MailConfig, logger *slog.Logger) (commands.Notifier, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverSMTP:
		m, err := NewSMTPMailer(cfg)
		if err != nil {
			return nil, err
		}
		return m, nil
	case DriverLog:
		return NewLogMailer(logger), nil
	case DriverMailerSend:
		if cfg.MailerSendKey == "" || cfg.FromEmail == "" {
			return nil, fmt.Errorf("mailersend driver requires MAILERSEND_API_KEY and MAIL_FROM")
		}
		return NewMailerSend(cfg), nil
	default:
		return nil, fmt.Errorf("unknown MAIL_DRIVER %q", cfg.Driver)
	}
}
