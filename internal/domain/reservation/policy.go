package reservation

import (
	"time"
	_ "time/tzdata"

	"table-reservation/internal/pkg/clock"
)

// Policy describes the dining room and the seating rules applied to every request.
type Policy struct {
	TotalTables      int
	SeatsPerTable    int
	FirstSeatingHour int
	LastSeatingHour  int
	MinPartySize     int
	MaxPartySize     int
	WindowBefore     time.Duration
	WindowAfter      time.Duration
	Location         *time.Location
}

func DefaultPolicy() Policy {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		loc = time.Local
	}
	return Policy{
		TotalTables:      15,
		SeatsPerTable:    4,
		FirstSeatingHour: 12,
		LastSeatingHour:  21,
		MinPartySize:     1,
		MaxPartySize:     20,
		WindowBefore:     time.Hour,
		WindowAfter:      2 * time.Hour,
		Location:         loc,
	}
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

// Window is an inclusive time range of reservations that compete for the same tables.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func (p Policy) Window(slot time.Time) Window {
	return Window{
		Start: slot.Add(-p.WindowBefore),
		End:   slot.Add(p.WindowAfter),
	}
}

func TablesRequired(partySize, seatsPerTable int) int {
	if partySize <= 0 || seatsPerTable <= 0 {
		return 0
	}
	return (partySize + seatsPerTable - 1) / seatsPerTable
}

func (p Policy) TablesRequired(partySize int) int {
	return TablesRequired(partySize, p.SeatsPerTable)
}

type Availability struct {
	IsAvailable     bool
	TablesRequired  int
	TablesAvailable int
}

func (p Policy) Evaluate(partySize, bookedTables int) Availability {
	required := p.TablesRequired(partySize)
	available := p.TotalTables - bookedTables
	return Availability{
		IsAvailable:     available >= required,
		TablesRequired:  required,
		TablesAvailable: available,
	}
}

// ServiceDay returns the calendar day of t in the restaurant's time zone.
func (p Policy) ServiceDay(t time.Time) time.Time {
	return clock.StartOfDay(t.In(p.location()))
}

func (p Policy) withinServiceHours(hour int) bool {
	return hour >= p.FirstSeatingHour && hour <= p.LastSeatingHour
}
