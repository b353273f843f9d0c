package queries

import (
	"context"

	"equiploan/internal/pkg/errs"
)

var ErrHistoryEmpty = errs.New("equipment history not found")

type HistoryQueries interface {
	List(ctx context.Context) ([]*HistoryView, error)
}

type HistoryReadStore interface {
	FindAll(ctx context.Context) ([]*HistoryView, error)
}

type historyQueriesImpl struct {
	readStore HistoryReadStore
}

func NewHistoryQueries(readStore HistoryReadStore) HistoryQueries {
	return &historyQueriesImpl{readStore: readStore}
}

func (q *historyQueriesImpl) List(ctx context.Context) ([]*HistoryView, error) {
	rows, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrHistoryEmpty
	}
	return rows, nil
}
