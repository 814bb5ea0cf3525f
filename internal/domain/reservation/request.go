package reservation

import (
	"fmt"
	"time"
)

// Request is a raw reservation form submission.
type Request struct {
	Name      string
	Email     string
	Phone     string
	Date      string
	Time      string
	PartySize string
}

type Violation struct {
	Field   Field
	Kind    ViolationKind
	Message string
}

func (v Violation) Error() string {
	return string(v.Field) + ": " + v.Message
}

// Booking is a Request that passed validation.
type Booking struct {
	Name        Name
	Email       Email
	Phone       Phone
	ScheduledAt time.Time
	PartySize   int
}

// Validate checks every field and returns all violations found; an empty result means valid.
func (r Request) Validate(p Policy, now time.Time) []Violation {
	_, violations := r.Parse(p, now)
	return violations
}

// Parse validates the request and, when no violation is found, returns the booking it describes.
func (r Request) Parse(p Policy, now time.Time) (Booking, []Violation) {
	var (
		b          Booking
		violations []Violation
		err        error
	)
	add := func(field Field, kind ViolationKind, msg string) {
		violations = append(violations, Violation{Field: field, Kind: kind, Message: msg})
	}

	if b.Name, err = NewName(r.Name); err != nil {
		add(FieldName, KindEmptyField, "Le nom est requis")
	}
	if b.Email, err = NewEmail(r.Email); err != nil {
		add(FieldEmail, KindInvalidFormat, "Email invalide")
	}
	if b.Phone, err = NewPhone(r.Phone); err != nil {
		add(FieldPhone, KindInvalidFormat, "Numéro de téléphone invalide")
	}

	slot, partySize, slotViolations := Slot{Date: r.Date, Time: r.Time, PartySize: r.PartySize}.Parse(p, now)
	violations = append(violations, slotViolations...)

	if len(violations) > 0 {
		return Booking{}, violations
	}

	b.ScheduledAt = slot
	b.PartySize = partySize
	return b, nil
}

// Slot is the date, time and party size part of a request, checked on its own
// by availability lookups.
type Slot struct {
	Date      string
	Time      string
	PartySize string
}

func (s Slot) Parse(p Policy, now time.Time) (time.Time, int, []Violation) {
	var violations []Violation
	add := func(field Field, kind ViolationKind, msg string) {
		violations = append(violations, Violation{Field: field, Kind: kind, Message: msg})
	}

	loc := p.location()
	day, dateErr := ParseServiceDate(s.Date, loc)
	switch {
	case dateErr != nil:
		add(FieldDate, KindInvalidFormat, "Date invalide")
	case day.Before(p.ServiceDay(now)):
		add(FieldDate, KindPastDate, "La date ne peut pas être dans le passé")
	}

	hour, minute, timeErr := ParseSeatingTime(s.Time)
	switch {
	case timeErr != nil:
		add(FieldTime, KindInvalidFormat, "Heure invalide")
	case !p.withinServiceHours(hour):
		add(FieldTime, KindOutsideServiceHours, fmt.Sprintf(
			"Les réservations sont possibles entre %dh et %dh", p.FirstSeatingHour, p.LastSeatingHour+1))
	}

	partySize, err := ParsePartySize(s.PartySize, p.MinPartySize, p.MaxPartySize)
	if err != nil {
		add(FieldPartySize, KindOutOfRange, fmt.Sprintf(
			"Le nombre de personnes doit être entre %d et %d", p.MinPartySize, p.MaxPartySize))
	}

	if len(violations) > 0 {
		return time.Time{}, 0, violations
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), partySize, nil
}

// HasKind reports whether any violation of the given kind was raised for field.
func HasKind(violations []Violation, field Field, kind ViolationKind) bool {
	for _, v := range violations {
		if v.Field == field && v.Kind == kind {
			return true
		}
	}
	return false
}
