package queries

import (
	"context"

	"equiploan/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound   = errs.New("request not found")
	ErrNoActiveRequests  = errs.New("no active equipment assigned")
	ErrNoPendingRequests = errs.New("no pending requests")
)

type RequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListActive(ctx context.Context) ([]*RequestView, error)
	ListPending(ctx context.Context) ([]*RequestView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*RequestView, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByStatus(ctx context.Context, status string) ([]*RequestView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	readStore RequestReadStore
}

func NewRequestQueries(readStore RequestReadStore) RequestQueries {
	return &requestQueriesImpl{readStore: readStore}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrRequestNotFound)
	}
	return view, nil
}

// Empty result is reported as an error so the boundary can surface the
// "nothing assigned" condition distinctly from an empty collection.
func (q *requestQueriesImpl) ListActive(ctx context.Context) ([]*RequestView, error) {
	rows, err := q.readStore.FindByStatus(ctx, "active")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoActiveRequests
	}
	return rows, nil
}

func (q *requestQueriesImpl) ListPending(ctx context.Context) ([]*RequestView, error) {
	rows, err := q.readStore.FindByStatus(ctx, "pending")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoPendingRequests
	}
	return rows, nil
}

func (q *requestQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*RequestView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}
