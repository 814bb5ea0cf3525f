package components

import (
	"log/slog"

	"table-reservation/internal/handler"
	"table-reservation/internal/handler/api"
	"table-reservation/internal/handler/web"
	"table-reservation/internal/pkg/clock"
	"table-reservation/internal/pkg/config"
	"table-reservation/internal/pkg/cookie"
	"table-reservation/internal/usecase/commands"
	"table-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewReservationPages,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)

func NewReservationPages(
	cmds commands.ReservationCommands,
	confirmations queries.ConfirmationQueries,
	cc *cookie.ConfirmationCookie,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) *web.ReservationHandler {
	return web.NewReservationHandler(cmds, confirmations, cc, cfg.Restaurant, clk, logger)
}
