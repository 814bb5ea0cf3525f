package components

import (
	"log/slog"

	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/pkg/clock"
	"table-reservation/internal/pkg/config"
	"table-reservation/internal/usecase/commands"
	"table-reservation/internal/usecase/queries"
	"table-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		reservation.NewRandomCodeGenerator,
		fx.As(new(reservation.CodeGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewConfirmationQueries,
	),
)

type reservationCommandParams struct {
	fx.In

	Config   config.Config
	UoW      shared.UnitOfWork
	Codes    reservation.CodeGenerator
	Notifier commands.Notifier
	Renderer commands.EmailRenderer
	Events   commands.EventPublisher
	Store    shared.ConfirmationStore
	Clock    clock.Clock
	Policy   reservation.Policy
	Logger   *slog.Logger
}

func NewReservationCommands(p reservationCommandParams) commands.ReservationCommands {
	return commands.NewReservationCommands(commands.ReservationDeps{
		UoW:      p.UoW,
		Codes:    p.Codes,
		Notifier: p.Notifier,
		Renderer: p.Renderer,
		Events:   p.Events,
		Store:    p.Store,
		Clock:    p.Clock,
		Policy:   p.Policy,
		Options: commands.Options{
			MailTimeout:     p.Config.Mail.Timeout,
			ConfirmationTTL: p.Config.Confirmation.TTL,
			EventSubject:    p.Config.NATS.Subject,
		},
		Logger: p.Logger,
	})
}
