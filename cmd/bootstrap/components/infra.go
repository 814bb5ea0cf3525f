package components

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"table-reservation/internal/infra/confirmation"
	"table-reservation/internal/infra/events"
	"table-reservation/internal/infra/mailer"
	"table-reservation/internal/pkg/clock"
	"table-reservation/internal/pkg/config"
	"table-reservation/internal/pkg/cookie"
	"table-reservation/internal/usecase/commands"
	"table-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewNotifier,
		fx.Annotate(
			NewEmailRenderer,
			fx.As(new(commands.EmailRenderer)),
		),
		NewEventPublisher,
		NewConfirmationStore,
		NewConfirmationCookie,
	),
)

func NewNotifier(cfg config.Config, logger *slog.Logger) (commands.Notifier, error) {
	n, err := mailer.New(cfg.Mail, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("mail driver selected", "driver", cfg.Mail.Driver)
	return n, nil
}

func NewEmailRenderer(cfg config.Config) (*mailer.Renderer, error) {
	return mailer.NewRenderer(cfg.Restaurant)
}

// NewEventPublisher connects to NATS when NATS_URL is set; otherwise events are dropped.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.EventPublisher, error) {
	if cfg.NATS.URL == "" {
		return events.NopPublisher{}, nil
	}

	pub, err := events.NewNATSPublisher(cfg.NATS.URL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func NewConfirmationStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (shared.ConfirmationStore, error) {
	switch strings.ToLower(cfg.Confirmation.Store) {
	case "", "memory":
		return confirmation.NewMemoryStore(clk), nil
	case "redis":
		client, err := confirmation.NewRedisClient(cfg.Confirmation)
		if err != nil {
			return nil, err
		}
		store := confirmation.NewRedisStore(client)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return store.Ping(ctx)
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return store, nil
	default:
		return nil, fmt.Errorf("unknown CONFIRMATION_STORE %q", cfg.Confirmation.Store)
	}
}

func NewConfirmationCookie(cfg config.Config) (*cookie.ConfirmationCookie, error) {
	return cookie.NewConfirmationCookie(cfg.Session, cfg.Confirmation.TTL)
}
