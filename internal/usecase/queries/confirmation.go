package queries

//go:generate mockgen -source=confirmation.go -destination=../../../tests/mock/queries/confirmation.go -package=queriesmock

import (
	"context"

	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/pkg/errs"
	"table-reservation/internal/usecase/shared"
)

type ConfirmationQueries interface {
	// Consume returns the pending confirmation for token exactly once.
	Consume(ctx context.Context, token string) (*reservation.PendingConfirmation, error)
}

type confirmationQueriesImpl struct {
	store shared.ConfirmationStore
}

func NewConfirmationQueries(store shared.ConfirmationStore) ConfirmationQueries {
	return &confirmationQueriesImpl{store: store}
}

func (q *confirmationQueriesImpl) Consume(ctx context.Context, token string) (*reservation.PendingConfirmation, error) {
	if token == "" {
		return nil, errs.ErrConfirmationNotFound
	}
	pc, err := q.store.Take(ctx, token)
	if err != nil {
		if errs.Is(err, errs.ErrConfirmationNotFound) {
			return nil, errs.ErrConfirmationNotFound
		}
		return nil, errs.Wrap(err, "take pending confirmation")
	}
	return pc, nil
}
