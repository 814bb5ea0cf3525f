package reservation

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

// Field identifies a reservation form input.
type Field string

const (
	FieldName      Field = "name"
	FieldEmail     Field = "email"
	FieldPhone     Field = "phone"
	FieldDate      Field = "date"
	FieldTime      Field = "time"
	FieldPartySize Field = "party_size"
)

type ViolationKind string

const (
	KindEmptyField          ViolationKind = "EmptyField"
	KindInvalidFormat       ViolationKind = "InvalidFormat"
	KindPastDate            ViolationKind = "PastDate"
	KindOutsideServiceHours ViolationKind = "OutsideServiceHours"
	KindOutOfRange          ViolationKind = "OutOfRange"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)
