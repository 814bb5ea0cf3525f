package reservation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrEmptyName         = errors.New("name is required")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidDate       = errors.New("invalid date format")
	ErrInvalidTime       = errors.New("invalid time format")
	ErrPartySizeRange    = errors.New("party size out of range")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidCodeFormat = errors.New("invalid reservation code format")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9+ ()-]{8,15}$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex  = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }

// ParseServiceDate parses a YYYY-MM-DD calendar date at midnight in loc.
func ParseServiceDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !dateRegex.MatchString(s) {
		return time.Time{}, ErrInvalidDate
	}
	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ParseSeatingTime returns the hour and minute of an HH:MM value.
func ParseSeatingTime(s string) (hour, minute int, err error) {
	s = strings.TrimSpace(s)
	if !timeRegex.MatchString(s) {
		return 0, 0, ErrInvalidTime
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, 0, ErrInvalidTime
	}
	return t.Hour(), t.Minute(), nil
}

// ParsePartySize accepts integers within [lo, hi]; anything else is out of range.
func ParsePartySize(s string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < lo || n > hi {
		return 0, ErrPartySizeRange
	}
	return n, nil
}
