package shared

import (
	"strings"

	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/pkg/errs"
)

// ValidationError carries every violation found in a submission.
type ValidationError struct {
	Violations []reservation.Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == errs.ErrValidation
}
