package shared

//go:generate mockgen -source=confirmation.go -destination=../../../tests/mock/shared/confirmation.go -package=sharedmock

import (
	"context"
	"time"

	"table-reservation/internal/domain/reservation"
)

// ConfirmationStore keeps pending confirmations between the POST and the redirected GET.
type ConfirmationStore interface {
	Put(ctx context.Context, token string, pc reservation.PendingConfirmation, ttl time.Duration) error
	// Take returns and deletes the entry in one step; a missing or expired token
	// yields errs.ErrConfirmationNotFound.
	Take(ctx context.Context, token string) (*reservation.PendingConfirmation, error)
}
