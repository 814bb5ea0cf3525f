package bootstrap

import (
	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/pkg/clock"
	"table-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

var PolicyModule = fx.Module("policy",
	fx.Provide(
		NewPolicy,
		NewClock,
	),
)

// NewPolicy builds the seating policy from the restaurant settings.
func NewPolicy(cfg config.Config) (reservation.Policy, error) {
	loc, err := cfg.Restaurant.Location()
	if err != nil {
		return reservation.Policy{}, err
	}

	p := reservation.DefaultPolicy()
	p.TotalTables = cfg.Restaurant.TotalTables
	p.SeatsPerTable = cfg.Restaurant.SeatsPerTable
	p.FirstSeatingHour = cfg.Restaurant.FirstSeatingHour
	p.LastSeatingHour = cfg.Restaurant.LastSeatingHour
	p.MinPartySize = cfg.Restaurant.MinPartySize
	p.MaxPartySize = cfg.Restaurant.MaxPartySize
	p.Location = loc
	return p, nil
}

func NewClock(p reservation.Policy) clock.Clock {
	return clock.NewRealClock(p.Location)
}
